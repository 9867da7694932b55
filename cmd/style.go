package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/bluff-analysis/analysis"
	"github.com/luca-patrignani/bluff-analysis/domain/bluff"
	"github.com/luca-patrignani/bluff-analysis/domain/poker"
)

func mark(ok bool) string {
	if ok {
		return pterm.LightGreen("yes")
	}
	return pterm.LightRed("no")
}

func prettyCards(cards ...poker.Card) string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Pretty()
	}
	return strings.Join(out, " ")
}

func printVerdict(hand poker.Hand, v bluff.Verdict) {
	hole, board := hand.Hole(), hand.Board()
	desc, err := hand.Describe()
	if err != nil {
		desc = "?"
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightRed("|NOT A BLUFF CANDIDATE|")
	if v.Candidate {
		title = pterm.LightGreen("|BLUFF CANDIDATE|")
	}
	body := pterm.Sprintfln("Hole: %s (%s)", pterm.BgGreen.Sprint(prettyCards(hole[:]...)), hole.Class()) +
		pterm.Sprintfln("Board: %s", pterm.BgGreen.Sprint(prettyCards(board[:]...))) +
		pterm.Sprintfln("Made hand: %s", desc) +
		pterm.Sprintfln("\nPair with a hole card: %s", mark(v.OnePair)) +
		pterm.Sprintfln("Two pair or better:    %s", mark(v.TwoPair)) +
		pterm.Sprintfln("Three to a flush:      %s", mark(v.Flush3)) +
		pterm.Sprintf("Three to a straight:   %s", mark(v.Straight3))
	pbox.WithTitle(title).WithTitleTopCenter().Println(body)
}

func printCandidates(board poker.Board, found []poker.HoleCards) {
	pterm.Info.Printfln("Board %s: %d bluff candidates", prettyCards(board[:]...), len(found))
	if len(found) == 0 {
		return
	}
	var classes []string
	byClass := map[string][]string{}
	for _, hc := range found {
		c := hc.Class()
		if _, ok := byClass[c]; !ok {
			classes = append(classes, c)
		}
		byClass[c] = append(byClass[c], prettyCards(hc[0], hc[1]))
	}
	data := pterm.TableData{{"Class", "Combos", "Hands"}}
	for _, c := range classes {
		data = append(data, []string{c, strconv.Itoa(len(byClass[c])), strings.Join(byClass[c], "  ")})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printSurvey(r analysis.Report) {
	pterm.Success.Printfln("%d flops, %d candidates (%.2f per flop)", r.Boards, r.Candidates, r.Average())
	if len(r.Classes) == 0 {
		return
	}
	data := pterm.TableData{{"Class", "Times a candidate"}}
	for i, cc := range r.Classes {
		if i == 15 {
			break
		}
		data = append(data, []string{cc.Class, fmt.Sprint(cc.Count)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
