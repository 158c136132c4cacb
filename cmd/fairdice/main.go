package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/OlimovAlibek/iTransition/config"
	"github.com/OlimovAlibek/iTransition/dice"
	"github.com/OlimovAlibek/iTransition/fairness"
	"github.com/OlimovAlibek/iTransition/game"
)

func main() {
	if len(os.Args) < 1+dice.MinDice {
		fmt.Fprintf(os.Stderr, "usage: %s <die> <die> <die> [die...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "each die is 6 comma-separated faces, e.g. 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3\n")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.NoColor {
		pterm.DisableColor()
	}
	if cfg.Debug {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	set, err := dice.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	banner()

	console := &console{}
	session, err := game.NewSession(set, game.Options{
		Decisions: console,
		Observer:  console,
		Policy:    policyFor(cfg),
		KeySize:   cfg.KeySize,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result, err := session.Run()
	if errors.Is(err, game.ErrCancelled) {
		return
	}
	if err != nil {
		if errors.Is(err, fairness.ErrViolation) {
			logger.Error("commitment verification failed, the round cannot be trusted", "error", err)
		} else {
			logger.Error("game aborted", "error", err)
		}
		os.Exit(1)
	}

	renderResult(result)

	if err := session.Transcript().Verify(); err != nil {
		logger.Error("transcript verification failed", "error", err)
		os.Exit(1)
	}
	pterm.Success.Printfln("All %d fairness rounds verified.", session.Transcript().Rounds())
	if cfg.ShowTranscript {
		renderTranscript(session.Transcript().Entries())
	}
}

func policyFor(cfg config.Config) game.Policy {
	if cfg.OpponentPolicy == config.PolicyGreedy {
		return game.GreedyPolicy{}
	}
	return game.UniformPolicy{}
}

// console implements both the decision source and the observer on top
// of pterm, including the "?" help and "X" exit tokens.
type console struct {
	set    dice.Set
	matrix dice.Matrix
}

func (c *console) Decide(p game.Prompt) (int, error) {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(promptLabel(p)).Show()
		token := strings.TrimSpace(raw)
		switch strings.ToLower(token) {
		case "x":
			return 0, game.ErrCancelled
		case "?":
			c.help(p)
			continue
		}
		value, err := strconv.Atoi(token)
		if err != nil || !valid(p, value) {
			pterm.Error.Printfln("Invalid choice %q, try again (? for help, X to exit).", token)
			continue
		}
		return value, nil
	}
}

func valid(p game.Prompt, value int) bool {
	if p.Kind == game.PromptDie {
		for _, i := range p.Options {
			if i == value {
				return true
			}
		}
		return false
	}
	return value >= 0 && value < p.Range
}

func promptLabel(p game.Prompt) string {
	switch p.Kind {
	case game.PromptFirstMove:
		return "Try to guess my bit: 0 or 1 (X to exit, ? for help)"
	case game.PromptDie:
		return fmt.Sprintf("Choose your die by index %v (X to exit, ? for help)", p.Options)
	default:
		whose := "my"
		if p.Player == game.Human {
			whose = "your"
		}
		return fmt.Sprintf("Add your number for %s throw: 0..%d (X to exit, ? for help)", whose, p.Range-1)
	}
}

func (c *console) help(p game.Prompt) {
	switch p.Kind {
	case game.PromptFirstMove:
		pterm.Info.Println("I already committed to a hidden bit; the HMAC above binds it.\n" +
			"If our bits add up to an even number you move first. After your\n" +
			"guess I reveal the bit and the key so you can check the HMAC.")
	case game.PromptDie:
		c.renderMatrix()
		pterm.Info.Println("The table shows your chance of beating each die. Pick by index.")
	default:
		pterm.Info.Println("The thrown face is (my hidden number + yours) mod 6. My number\n" +
			"is already bound by the HMAC above, so neither of us can steer the throw.")
	}
}

func (c *console) MatrixComputed(set dice.Set, m dice.Matrix) {
	c.set, c.matrix = set, m
	c.renderMatrix()
}

func (c *console) CommitmentPublished(purpose string, valueRange int, tag []byte) {
	pterm.Info.Printfln("[%s] I selected a value in 0..%d.", purpose, valueRange-1)
	pterm.Printfln("  HMAC=%s", hexUpper(tag))
}

func (c *console) Revealed(purpose string, out fairness.Outcome) {
	pterm.Printfln("  My number was %d, KEY=%s", out.Secret, hexUpper(out.Key))
	pterm.Printfln("  Result: (%d + %d) %% %d = %d", out.Secret, out.Contribution, out.Range, out.Combined)
}

func (c *console) FirstMoverDecided(p game.Player) {
	if p == game.Human {
		pterm.Success.Println("You make the first move.")
	} else {
		pterm.Info.Println("I make the first move.")
	}
}

func (c *console) DieChosen(p game.Player, index int, d dice.Die) {
	if p == game.Human {
		pterm.Info.Printfln("You take die %d: [%s]", index, d)
	} else {
		pterm.Info.Printfln("I take die %d: [%s]", index, d)
	}
}

func (c *console) FaceThrown(p game.Player, face int) {
	if p == game.Human {
		pterm.Success.Printfln("Your throw is %d.", face)
	} else {
		pterm.Info.Printfln("My throw is %d.", face)
	}
}

func (c *console) Resolved(game.Result) {}
