package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/OlimovAlibek/iTransition/game"
	"github.com/OlimovAlibek/iTransition/transcript"
)

func banner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("F", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("air ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("D", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ice", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func hexUpper(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// renderMatrix prints the win probabilities as percentages with one
// decimal place; the diagonal is a placeholder.
func (c *console) renderMatrix() {
	if c.matrix == nil {
		return
	}
	header := []string{"Your die \\ against"}
	for i, d := range c.set {
		header = append(header, fmt.Sprintf("#%d [%s]", i, d))
	}
	data := pterm.TableData{header}
	for i, d := range c.set {
		row := []string{fmt.Sprintf("#%d [%s]", i, d)}
		for j := range c.set {
			if i == j {
				row = append(row, "-")
			} else {
				row = append(row, fmt.Sprintf("%.1f%%", c.matrix[i][j]*100))
			}
		}
		data = append(data, row)
	}
	pterm.Info.Println("Probability that the row die beats the column die:")
	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
}

func renderResult(r game.Result) {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var title string
	switch r.Verdict {
	case game.HumanWins:
		title = pterm.LightGreen("|YOU WIN|")
	case game.OpponentWins:
		title = pterm.LightRed("|YOU LOSE|")
	default:
		title = pterm.LightYellow("|DRAW|")
	}
	body := pterm.Sprintf("Your die #%d threw %d\nMy die #%d threw %d",
		r.HumanDie, r.HumanFace, r.OpponentDie, r.OpponentFace)
	pterm.Println(box.WithTitle(title).WithTitleTopCenter().Sprint(body))
}

func renderTranscript(entries []transcript.Entry) {
	data := pterm.TableData{{"#", "Purpose", "Range", "HMAC", "Secret", "Yours", "Result"}}
	for _, e := range entries {
		if e.Purpose == "genesis" {
			continue
		}
		data = append(data, []string{
			strconv.Itoa(e.Index),
			e.Purpose,
			strconv.Itoa(e.Range),
			strings.ToUpper(e.Tag[:16]) + "...",
			strconv.Itoa(e.Secret),
			strconv.Itoa(e.Contribution),
			strconv.Itoa(e.Combined),
		})
	}
	pterm.Info.Println("Fairness transcript:")
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
