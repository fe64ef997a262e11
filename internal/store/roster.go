package store

import "github.com/snapshelf/orderdesk/internal/types"

// The roster is fixed configuration. Workload on these entries is a
// placeholder; Roster() recomputes it from live assignments.
var teamRoster = []types.TeamMember{
	{ID: "anna.k", Name: "Anna Kovalenko", Avatar: "AK", Skills: []string{"retouching", "color-correction"}},
	{ID: "david.m", Name: "David Moore", Avatar: "DM", Skills: []string{"background-removal", "masking"}},
	{ID: "sofia.r", Name: "Sofia Reyes", Avatar: "SR", Skills: []string{"jewelry", "retouching"}},
	{ID: "liam.t", Name: "Liam Tran", Avatar: "LT", Skills: []string{"ghost-mannequin", "apparel"}},
	{ID: "emma.w", Name: "Emma Walsh", Avatar: "EW", Skills: []string{"color-correction", "quality-review"}},
	{ID: types.Unassigned, Name: "Unassigned", Avatar: "--"},
}
