package models

import (
	"github.com/alex-pricope/snackify/rating"
	"github.com/alex-pricope/snackify/snacks"
)

type LeaderboardResponse struct {
	TopRated   []SnackWithSummaryResponse `json:"topRated"`
	Spiciest   []SnackWithSummaryResponse `json:"spiciest"`
	MostUnique []SnackWithSummaryResponse `json:"mostUnique"`
	ByCountry  []SnackWithSummaryResponse `json:"byCountry"`
	SweetFoods []SnackWithSummaryResponse `json:"sweetFoods"`
}

func TransformLeaderboard(board rating.Leaderboard[snacks.SnackWithSummary]) LeaderboardResponse {
	return LeaderboardResponse{
		TopRated:   TransformSnackList(board.TopRated),
		Spiciest:   TransformSnackList(board.Spiciest),
		MostUnique: TransformSnackList(board.MostUnique),
		ByCountry:  TransformSnackList(board.ByCountry),
		SweetFoods: TransformSnackList(board.SweetFoods),
	}
}
