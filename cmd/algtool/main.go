package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type globalCmd struct {
	ProjectID string `help:"GCP project ID." env:"GCP_PROJECT" required:""`
}

var CLI struct {
	globalCmd

	League struct {
		Setup setupLeagueCmd `cmd:"" help:"Seed the provinces collection."`
	} `cmd:""`

	Onboard onboardCmd `cmd:"" help:"Create a player profile."`

	Users struct {
		Get getUserCmd `cmd:"" help:"Show one player profile."`
	} `cmd:""`

	Matches struct {
		Add    addMatchCmd      `cmd:"" help:"Schedule a match."`
		Ls     lsMatchesCmd     `cmd:"" help:"List all matches."`
		Export exportMatchesCmd `cmd:"" help:"Export matches to an Excel workbook."`
	} `cmd:""`

	Teams struct {
		Create    createTeamCmd  `cmd:"" help:"Register a team."`
		Ls        lsTeamsCmd     `cmd:"" help:"List all teams."`
		Standings standingsCmd   `cmd:"" help:"Show the league table."`
		Import    importTeamsCmd `cmd:"" help:"Import teams from a roster workbook."`
	} `cmd:""`

	Recruit struct {
		Post postRecruitCmd `cmd:"" help:"Publish a recruitment post."`
		Ls   lsRecruitCmd   `cmd:"" help:"List all recruitment posts."`
	} `cmd:""`

	Feed struct {
		Advice adviceCmd   `cmd:"" help:"AI matchmaking advice for a player."`
		Post   feedPostCmd `cmd:"" help:"AI feed post for a locality."`
	} `cmd:""`

	Contacts struct {
		Ls lsContactsCmd `cmd:"" help:"List address-book contacts."`
	} `cmd:""`

	Auth struct {
		Signup signupCmd        `cmd:"" help:"Create an account with the identity provider."`
		Reset  resetPasswordCmd `cmd:"" help:"Send a password-reset email."`
	} `cmd:""`
}

func main() {
	// Optional; flags fall back to the process environment.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
