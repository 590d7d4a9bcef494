// Package words supplies the round words for the game: local pools
// loaded from data files (with embedded defaults), optional country
// names from the REST Countries API, and best-effort dictionary
// lookups for missing meanings.
package words

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	log "github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/game"
)

//go:embed data/words.txt
var embeddedWords string

//go:embed data/words_meanings.txt
var embeddedWordMeanings string

//go:embed data/countries.txt
var embeddedCountries string

//go:embed data/countries_meanings.txt
var embeddedCountryMeanings string

// Pool selectors accepted by FetchRound.
const (
	PoolGlobal    = "global"
	PoolCountries = "countries"
	PoolAny       = "any"
)

const (
	defaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	defaultCountriesURL  = "https://restcountries.com/v3.1/all"
	defaultTimeout       = 5 * time.Second
)

// Entry is one candidate word: the guessable token, the display form
// with original capitals and spaces, and a short meaning clue.
type Entry struct {
	Word    string
	Display string
	Meaning string
}

// Config configures a Source. Zero values use the embedded pools and
// the public lookup endpoints.
type Config struct {
	DataDir       string // Optional directory with words.txt / countries.txt overrides
	DictionaryURL string
	CountriesURL  string
	Timeout       time.Duration
	Seed          int64 // 0 = time-based
}

// Source implements game.WordSource. Safe for use from a single
// session goroutine; the lazy country load is guarded for reuse across
// sessions.
type Source struct {
	cfg    Config
	client *http.Client
	logger *log.Logger
	rng    *rand.Rand

	words []Entry

	mu              sync.Mutex
	countries       []Entry
	countriesLoaded bool
}

// NewSource builds a source. The global pool loads immediately (local
// override file first, embedded default otherwise); countries load
// lazily on the first request that needs them.
func NewSource(cfg Config, logger *log.Logger) *Source {
	if cfg.DictionaryURL == "" {
		cfg.DictionaryURL = defaultDictionaryURL
	}
	if cfg.CountriesURL == "" {
		cfg.CountriesURL = defaultCountriesURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Source{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	s.words = s.loadGlobal()
	return s
}

// FetchRound picks a random word from the requested pool. Global words
// without a local meaning get a best-effort dictionary lookup; lookup
// failures degrade to a generic clue, never to an error.
func (s *Source) FetchRound(ctx context.Context, pool string) (game.RoundWord, error) {
	var candidates []Entry
	switch strings.ToLower(strings.TrimSpace(pool)) {
	case PoolGlobal, "":
		candidates = s.words
	case PoolCountries:
		candidates = s.loadCountries(ctx)
	case PoolAny:
		candidates = append(append([]Entry{}, s.words...), s.loadCountries(ctx)...)
	default:
		return game.RoundWord{}, fmt.Errorf("words: unknown pool %q", pool)
	}
	if len(candidates) == 0 {
		return game.RoundWord{}, fmt.Errorf("words: pool %q is empty", pool)
	}

	e := candidates[s.rng.Intn(len(candidates))]
	meaning := e.Meaning
	if meaning == "" {
		meaning = s.lookupDefinition(ctx, e.Word)
	}
	if meaning == "" {
		meaning = "a word"
	}
	return game.RoundWord{Word: e.Word, Display: e.Display, Meaning: meaning}, nil
}

// Pools lists the accepted pool selectors.
func Pools() []string {
	return []string{PoolGlobal, PoolCountries, PoolAny}
}

func (s *Source) loadGlobal() []Entry {
	list := s.readListFile("words.txt")
	meanings := s.readMeaningsFile("words_meanings.txt")
	if list == nil {
		list = parseList(embeddedWords)
		meanings = parseMeanings(embeddedWordMeanings)
	} else if meanings == nil {
		meanings = parseMeanings(embeddedWordMeanings)
	}

	seen := make(map[string]bool, len(list))
	entries := make([]Entry, 0, len(list))
	for _, raw := range list {
		word := NormalizeWord(raw)
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		m := meanings[strings.ToLower(raw)]
		if m == "" {
			m = meanings[word]
		}
		// Global entries display the normalized form ("ice cream" shows
		// as "ice-cream"), keeping every display character aligned with
		// a guessable target position. Only countries keep a richer
		// display form.
		entries = append(entries, Entry{Word: word, Display: word, Meaning: m})
	}
	return entries
}

// loadCountries resolves the country pool once: a local override file
// wins, then the REST Countries API, then the embedded fallback list.
func (s *Source) loadCountries(ctx context.Context) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countriesLoaded {
		return s.countries
	}

	if list := s.readListFile("countries.txt"); list != nil {
		meanings := s.readMeaningsFile("countries_meanings.txt")
		s.countries = buildCountryEntries(list, meanings)
		s.countriesLoaded = true
		return s.countries
	}

	if remote, err := s.fetchCountries(ctx); err != nil {
		s.logger.Warn("country lookup failed, using built-in list", "err", err)
	} else {
		s.countries = remote
		s.countriesLoaded = true
		return s.countries
	}

	s.countries = buildCountryEntries(parseList(embeddedCountries), parseMeanings(embeddedCountryMeanings))
	s.countriesLoaded = true
	return s.countries
}

func buildCountryEntries(list []string, meanings map[string]string) []Entry {
	seen := make(map[string]bool, len(list))
	entries := make([]Entry, 0, len(list))
	for _, raw := range list {
		word := NormalizeCountry(raw)
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		m := meanings[strings.ToLower(raw)]
		if m == "" {
			m = meanings[word]
		}
		if m == "" {
			m = "a country"
		}
		entries = append(entries, Entry{Word: word, Display: raw, Meaning: m})
	}
	return entries
}

// readListFile reads one item per line from the data dir, skipping
// blanks and '#' comments. Returns nil when the dir or file is absent.
func (s *Source) readListFile(name string) []string {
	if s.cfg.DataDir == "" {
		return nil
	}
	f, err := os.Open(filepath.Join(s.cfg.DataDir, name))
	if err != nil {
		return nil
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func (s *Source) readMeaningsFile(name string) map[string]string {
	if s.cfg.DataDir == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(s.cfg.DataDir, name))
	if err != nil {
		return nil
	}
	return parseMeanings(string(data))
}

func parseList(data string) []string {
	var out []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// parseMeanings reads "key | meaning" lines, also accepting tab and
// " - " separators. Keys are lowercased.
func parseMeanings(data string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var key, val string
		switch {
		case strings.Contains(line, "|"):
			key, val, _ = strings.Cut(line, "|")
		case strings.Contains(line, "\t"):
			key, val, _ = strings.Cut(line, "\t")
		case strings.Contains(line, " - "):
			key, val, _ = strings.Cut(line, " - ")
		default:
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)
		if key != "" && val != "" {
			out[key] = val
		}
	}
	return out
}
