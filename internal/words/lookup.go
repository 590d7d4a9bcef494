package words

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// lookupDefinition fetches a short definition from the dictionary API.
// Failures return "" so the caller can fall back to a generic clue.
func (s *Source) lookupDefinition(ctx context.Context, word string) string {
	u := s.cfg.DictionaryURL + "/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return ""
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Debug("dictionary lookup failed", "word", word, "err", err)
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var entries []struct {
		Meanings []struct {
			Definitions []struct {
				Definition string `json:"definition"`
			} `json:"definitions"`
		} `json:"meanings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return ""
	}
	for _, e := range entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if d.Definition != "" {
					return d.Definition
				}
			}
		}
	}
	return ""
}

// fetchCountries pulls country names and regions from the REST
// Countries API and converts them into pool entries.
func (s *Source) fetchCountries(ctx context.Context) ([]Entry, error) {
	u := s.cfg.CountriesURL + "?fields=name,region"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("countries api: status %d", resp.StatusCode)
	}

	var raw []struct {
		Name struct {
			Common   string `json:"common"`
			Official string `json:"official"`
		} `json:"name"`
		Region string `json:"region"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(raw))
	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		display := item.Name.Official
		if display == "" {
			display = item.Name.Common
		}
		word := NormalizeCountry(display)
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		meaning := "a country"
		if item.Region != "" {
			meaning = "a country in " + item.Region
		}
		entries = append(entries, Entry{Word: word, Display: display, Meaning: meaning})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("countries api: empty response")
	}
	return entries, nil
}
