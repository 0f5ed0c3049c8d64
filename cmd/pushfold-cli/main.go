package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/robalobadob/pushfold-trainer/internal/config"
	"github.com/robalobadob/pushfold-trainer/internal/ranges"
	"github.com/robalobadob/pushfold-trainer/internal/trainer"
)

func main() {
	roundsFlag := flag.Int("rounds", 0, "rounds per quiz (0 = profile default)")
	modeFlag := flag.String("mode", "", "hand sampling: combos or classes (default from profile)")
	flag.Parse()

	_ = godotenv.Load()

	table, err := ranges.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load ranges: %v\n", err)
		os.Exit(1)
	}
	profile, err := config.ReadProfileFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read profile: %v\n", err)
		os.Exit(1)
	}
	resolved, err := profile.Resolve(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve profile: %v\n", err)
		os.Exit(1)
	}
	mode := resolved.Mode
	if *modeFlag != "" {
		mode, err = trainer.ParseSampleMode(*modeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad -mode: %v\n", err)
			os.Exit(1)
		}
	}
	rounds := resolved.Rounds
	if *roundsFlag > 0 {
		rounds = *roundsFlag
	}

	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Push", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Fold", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Info.Printfln("Stacks %v, %d positions, %d rounds per quiz",
		table.Buckets(), len(resolved.Positions), rounds)
	pterm.Println()

	for {
		gen, err := trainer.NewGenerator(resolved.Stacks, resolved.Positions, mode, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "build generator: %v\n", err)
			os.Exit(1)
		}
		sess := trainer.NewSession(gen, rounds)
		if err := runQuiz(table, sess); err != nil {
			fmt.Fprintf(os.Stderr, "quiz failed: %v\n", err)
			os.Exit(1)
		}
		printScore(sess)

		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Play another quiz?").WithDefaultValue(true).Show()
		if !again {
			break
		}
		pterm.Println()
	}
	pterm.Println("Thanks for training...")
}

// runQuiz plays every round of the session interactively.
func runQuiz(table *ranges.Table, sess *trainer.Session) error {
	actions := []string{"Push", "Fold"}
	for {
		sc, err := sess.Current()
		if err != nil {
			return nil // complete
		}
		printScenario(sess, sc)

		selected, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Your move").WithOptions(actions).Show()
		choice := ranges.Fold
		if selected == "Push" {
			choice = ranges.Push
		}

		res, err := trainer.Evaluate(table, sc, choice)
		if err != nil {
			return err
		}
		printOutcome(table, sc, res)
		sess.Record(choice, res)
	}
}
