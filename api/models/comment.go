package models

import "github.com/alex-pricope/snackify/storage"

type CommentRequest struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

type CommentResponse struct {
	Text      string `json:"text"`
	Author    string `json:"author"`
	Timestamp int64  `json:"timestamp"`
}

func TransformComments(comments []*storage.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentResponse{
			Text:      c.Text,
			Author:    c.Author,
			Timestamp: c.CreatedAt.UnixMilli(),
		})
	}
	return out
}
