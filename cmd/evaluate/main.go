package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"handrank-server/internal/config"
	"handrank-server/internal/rng"
	"handrank-server/internal/util"
	"handrank-server/pkg/deck"
	"handrank-server/pkg/poker"
)

var asJSON = flag.Bool("json", false, "print the results as JSON")
var compare = flag.Bool("compare", false, "compare exactly two hands")
var deal = flag.Int("deal", 0, "evaluate a random hand of this many cards instead of reading hands")

type options struct {
	json    bool
	compare bool
	symbols bool
}

type handOutput struct {
	Cards       []deck.Card    `json:"cards"`
	Category    poker.Category `json:"category"`
	Description string         `json:"description"`
	Primary     []deck.Card    `json:"primary"`
	Kickers     []deck.Card    `json:"kickers"`

	result poker.Result
}

type compareOutput struct {
	Winner string     `json:"winner"`
	A      handOutput `json:"a"`
	B      handOutput `json:"b"`
}

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := util.SetupLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("could not parse level")
	}

	inputs := flag.Args()
	if *deal > 0 {
		count := 1
		if *compare {
			count = 2
		}

		var err error
		if inputs, err = dealHands(*deal, count, rng.Crypto{}); err != nil {
			logrus.WithError(err).Fatal("could not deal")
		}
	} else if len(inputs) == 0 {
		var err error
		if inputs, err = readLines(os.Stdin); err != nil {
			logrus.WithError(err).Fatal("could not read hands")
		}
	}

	opts := options{
		json:    *asJSON,
		compare: *compare,
		symbols: !*asJSON && term.IsTerminal(int(os.Stdout.Fd())),
	}

	if err := run(os.Stdout, inputs, opts); err != nil {
		logrus.WithError(err).Fatal("could not evaluate")
	}
}

// readLines returns every non-blank line
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, scanner.Err()
}

// dealHands deals count hands of n cards each from a single shuffled deck
func dealHands(n, count int, gen rng.Generator) ([]string, error) {
	cards, err := deck.Deal(n*count, gen)
	if err != nil {
		return nil, err
	}

	hands := make([]string, count)
	for i := range hands {
		hands[i] = deck.CardsToString(cards[i*n : (i+1)*n])
	}

	return hands, nil
}

func run(w io.Writer, inputs []string, opts options) error {
	if len(inputs) == 0 {
		return fmt.Errorf("no hands to evaluate")
	}

	if opts.compare && len(inputs) != 2 {
		return fmt.Errorf("compare needs exactly two hands: got %d", len(inputs))
	}

	hands := make([]handOutput, len(inputs))
	for i, input := range inputs {
		hand, err := evaluate(input)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}

		hands[i] = hand
	}

	if opts.compare {
		return printComparison(w, hands[0], hands[1], opts)
	}

	if opts.json {
		enc := json.NewEncoder(w)
		for _, hand := range hands {
			if err := enc.Encode(hand); err != nil {
				return err
			}
		}

		return nil
	}

	for _, hand := range hands {
		if _, err := fmt.Fprintln(w, formatHand(hand, opts.symbols)); err != nil {
			return err
		}
	}

	return nil
}

func evaluate(input string) (handOutput, error) {
	cards, err := deck.ParseHand(input)
	if err != nil {
		return handOutput{}, err
	}

	if err := poker.ValidateSize(cards); err != nil {
		return handOutput{}, err
	}

	if err := deck.CheckUnique(cards); err != nil {
		return handOutput{}, err
	}

	result := poker.Evaluate(cards)
	return handOutput{
		Cards:       cards,
		Category:    result.Category,
		Description: result.Describe(),
		Primary:     result.Primary,
		Kickers:     result.Kickers,
		result:      result,
	}, nil
}

func printComparison(w io.Writer, a, b handOutput, opts options) error {
	winner := "tie"
	switch cmp := poker.Compare(a.result, b.result); {
	case cmp > 0:
		winner = "a"
	case cmp < 0:
		winner = "b"
	}

	if opts.json {
		return json.NewEncoder(w).Encode(compareOutput{Winner: winner, A: a, B: b})
	}

	_, err := fmt.Fprintf(w, "a: %s\nb: %s\nwinner: %s\n", formatHand(a, opts.symbols), formatHand(b, opts.symbols), winner)
	return err
}

func formatHand(hand handOutput, symbols bool) string {
	show := deck.CardsToString
	if symbols {
		show = func(cards []deck.Card) string {
			return deck.Hand(cards).Symbols()
		}
	}

	return fmt.Sprintf("%s => %s (%s)", show(hand.Cards), hand.Description, show(hand.result.Cards()))
}
