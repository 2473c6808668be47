package application

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/specforge/specforge/internal/domain/oracle"
)

// ExprService answers free-text arithmetic questions: it normalizes common
// natural-language phrasing into an expression the oracle grammar accepts,
// then evaluates it. This is the interactive counterpart of the generator's
// oracle; unlike generation, division by zero here answers with the
// Infinity sentinel instead of failing.
type ExprService struct{}

func NewExprService() *ExprService { return &ExprService{} }

var (
	phraseOps = []struct {
		pattern *regexp.Regexp
		symbol  string
	}{
		{regexp.MustCompile(`\bmultiplied by\b`), " * "},
		{regexp.MustCompile(`\btimes\b`), " * "},
		{regexp.MustCompile(`\bdivided by\b`), " / "},
		{regexp.MustCompile(`\bover\b`), " / "},
		{regexp.MustCompile(`\bplus\b`), " + "},
		{regexp.MustCompile(`\bminus\b`), " - "},
	}

	fillerRE     = regexp.MustCompile(`\b(calculate|compute|what is|what's|please|answer)\b|=`)
	spacesRE     = regexp.MustCompile(`\s+`)
	trailingRE   = regexp.MustCompile(`[?!.]+$`)
	numberWords  = map[string]string{
		"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
		"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
		"ten": "10", "eleven": "11", "twelve": "12", "thirteen": "13",
		"fourteen": "14", "fifteen": "15", "sixteen": "16", "seventeen": "17",
		"eighteen": "18", "nineteen": "19", "twenty": "20", "thirty": "30",
		"forty": "40", "fifty": "50", "sixty": "60", "seventy": "70",
		"eighty": "80", "ninety": "90", "hundred": "100",
	}
	numberWordRE = regexp.MustCompile(`\b(` + strings.Join(numberWordKeys(), "|") + `)\b`)
)

func numberWordKeys() []string {
	keys := make([]string, 0, len(numberWords))
	for k := range numberWords {
		keys = append(keys, k)
	}
	return keys
}

// Normalize rewrites natural-language math phrasing into symbols and digits.
// Replacements are conservative: numeric tokens and operator symbols pass
// through untouched.
func (s *ExprService) Normalize(text string) string {
	t := strings.ToLower(text)
	for _, op := range phraseOps {
		t = op.pattern.ReplaceAllString(t, op.symbol)
	}
	t = fillerRE.ReplaceAllString(t, "")
	t = numberWordRE.ReplaceAllStringFunc(t, func(w string) string { return numberWords[w] })
	t = spacesRE.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Extract pulls the bare expression out of a prompt like "what is 1 + 2?".
func (s *ExprService) Extract(text string) string {
	expr := s.Normalize(text)
	expr = trailingRE.ReplaceAllString(expr, "")
	return strings.TrimSpace(expr)
}

// Calculate extracts and evaluates an expression from free text.
func (s *ExprService) Calculate(text string) (string, error) {
	expr := s.Extract(text)
	if expr == "" {
		return "", errors.New("no expression found")
	}

	v, err := oracle.Evaluate(expr, nil)
	if err != nil {
		if errors.Is(err, oracle.ErrDivisionByZero) {
			return "Infinity", nil
		}
		return "", err
	}

	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return strconv.FormatInt(int64(v), 10), nil
	}
	return strconv.FormatFloat(v, 'g', -1, 64), nil
}
