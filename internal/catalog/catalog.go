package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultTopic is used when a query matches no catalogue entry.
const DefaultTopic = "Data Structures"

//go:embed catalog.yaml
var catalogYAML []byte

type Video struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Channel     string `yaml:"channel" json:"channel"`
	Description string `yaml:"description" json:"description"`
}

// Thumbnail is the YouTube high quality still for the video.
func (v Video) Thumbnail() string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", v.ID)
}

type Article struct {
	ID      string `yaml:"id" json:"id"`
	Title   string `yaml:"title" json:"title"`
	URL     string `yaml:"url" json:"url"`
	Source  string `yaml:"source" json:"source"`
	Snippet string `yaml:"snippet" json:"snippet"`
}

type Topic struct {
	Name     string    `yaml:"name"`
	Videos   []Video   `yaml:"videos"`
	Articles []Article `yaml:"articles"`
}

// Catalog is the curated resource set, ordered as declared in the document.
type Catalog struct {
	Topics []Topic `yaml:"topics"`
	byName map[string]*Topic
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalogue.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(catalogYAML)
	})
	return defaultCatalog, defaultErr
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse resource catalog: %w", err)
	}
	c.byName = make(map[string]*Topic, len(c.Topics))
	for i := range c.Topics {
		c.byName[c.Topics[i].Name] = &c.Topics[i]
	}
	if _, ok := c.byName[DefaultTopic]; !ok {
		return nil, fmt.Errorf("resource catalog has no %q entry", DefaultTopic)
	}
	return &c, nil
}

// keyword fallbacks, checked in order after the topic names themselves.
var fallbacks = []struct {
	topic string
	match func(q string) bool
}{
	{"Data Structures", containsAny("structure", "algorithm", "dsa")},
	{"COA", containsAny("organization", "architecture", "coa")},
	{"System Design", func(q string) bool { return strings.Contains(q, "system") && strings.Contains(q, "design") }},
	{"Operating Systems", containsAny("operating", "os")},
	{"Networks", containsAny("network")},
	{"Database", containsAny("dbms", "sql", "database")},
	{"MERN", containsAny("mern", "react", "node")},
	{"Deep Learning", containsAny("deep")},
	{"Machine Learning", containsAny("machine", "ml")},
}

func containsAny(words ...string) func(string) bool {
	return func(q string) bool {
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}
}

// MatchTopic maps a free-text query to a catalogue topic name.
func (c *Catalog) MatchTopic(query string) string {
	q := strings.ToLower(query)
	for _, t := range c.Topics {
		if strings.Contains(q, strings.ToLower(t.Name)) {
			return t.Name
		}
	}
	for _, f := range fallbacks {
		if f.match(q) {
			if _, ok := c.byName[f.topic]; ok {
				return f.topic
			}
		}
	}
	return DefaultTopic
}

func (c *Catalog) Videos(query string) []Video {
	return c.byName[c.MatchTopic(query)].Videos
}

func (c *Catalog) Articles(query string) []Article {
	return c.byName[c.MatchTopic(query)].Articles
}
