package main

import (
	"github.com/pterm/pterm"

	"github.com/robalobadob/pushfold-trainer/internal/ranges"
	"github.com/robalobadob/pushfold-trainer/internal/trainer"
)

// printScenario renders the current round in a box: round counter,
// stack depth, position and the two hole cards.
func printScenario(sess *trainer.Session, sc trainer.Scenario) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	hand := pterm.BgGreen.Sprintf(" %s %s ", sc.Cards[0].String(), sc.Cards[1].String())
	title := pterm.Sprintf("Round %d/%d", sess.Index+1, len(sess.Scenarios))
	body := pterm.Sprintf("Stack: %s BB\nPosition: %s\n%s\n",
		pterm.LightCyan(sc.Stack), pterm.LightCyan(string(sc.Position)), hand)
	pterm.Println(pbox.WithTitle(pterm.LightYellow(title)).WithTitleTopCenter().Sprint(body))
}

// printOutcome shows whether the choice matched the chart and how wide
// the push range is for this spot.
func printOutcome(table *ranges.Table, sc trainer.Scenario, res trainer.Result) {
	pct, err := table.PushPercent(sc.Stack, sc.Position)
	spot := pterm.Sprintf("%s at %d BB in %s", string(sc.Class), sc.Stack, string(sc.Position))
	if res.Correct {
		pterm.Success.Printfln("Correct. %s is a %s", spot, string(res.Expected))
	} else {
		pterm.Error.Printfln("Wrong. %s is a %s", spot, string(res.Expected))
	}
	if err == nil {
		pterm.Info.Printfln("The chart pushes the top %.1f%% of hands here", pct)
	}
	pterm.Println()
}

// printScore renders the final score panel with the review trail.
func printScore(sess *trainer.Session) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := ""
	for i, r := range sess.Review {
		mark := pterm.LightGreen("+")
		if !r.Correct {
			mark = pterm.LightRed("x")
		}
		body += pterm.Sprintfln("%s %d. %s at %d BB in %s: you chose %s, chart says %s",
			mark, i+1, string(r.Scenario.Class), r.Scenario.Stack, string(r.Scenario.Position),
			string(r.Choice), string(r.Expected))
	}
	acc, err := sess.Stats.Accuracy()
	if err != nil {
		body += pterm.Sprintfln("\nNo rounds answered yet")
	} else {
		body += pterm.Sprintfln("\nScore: %d/%d (%.0f%%)", sess.Stats.Correct, sess.Stats.Total, acc*100)
	}
	pterm.Println(pbox.WithTitle(pterm.LightGreen("|RESULTS|")).WithTitleTopCenter().Sprint(body))
}
