package bank

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"gopkg.in/yaml.v3"
)

// DefaultEncoding is used when Load is given an empty encoding name.
const DefaultEncoding = "utf-8"

type yamlDeck struct {
	Categories []Category `yaml:"categories"`
}

// Load reads a question bank file, decoding it from the named IANA charset.
// The format is picked by extension: .yaml/.yml or .txt/.deck.
func Load(filePath string, encodingName string) (*Bank, error) {
	text, err := readText(filePath, encodingName)
	if err != nil {
		return nil, err
	}

	var categories []Category
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		categories, err = ParseYAML(text)
	case ".txt", ".deck":
		categories, err = ParseAnnotated(text)
	default:
		return nil, &fs.PathError{Op: "bank-detect-format", Path: filePath, Err: ErrUnknownFormat}
	}
	if err != nil {
		return nil, &fs.PathError{Op: "bank-parse", Path: filePath, Err: err}
	}

	b, err := New(categories)
	if err != nil {
		return nil, &fs.PathError{Op: "bank-validate", Path: filePath, Err: err}
	}
	return b, nil
}

// ParseYAML parses a deck of the form `categories: [{name, color, questions}]`.
func ParseYAML(text string) ([]Category, error) {
	var deck yamlDeck
	if err := yaml.Unmarshal([]byte(text), &deck); err != nil {
		return nil, err
	}
	return deck.Categories, nil
}

func readText(filePath string, encodingName string) (string, error) {
	if encodingName == "" {
		encodingName = DefaultEncoding
	}
	enc, err := ianaindex.IANA.Encoding(encodingName)
	if err != nil {
		return "", &fs.PathError{Op: "bank-read-get-encoding", Path: filePath, Err: err}
	}
	if enc == nil {
		enc = encoding.Nop
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", &fs.PathError{Op: "bank-read-open", Path: filePath, Err: err}
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			log.Printf("error closing question bank: %v", err)
		}
	}(file)

	content, err := io.ReadAll(bufio.NewReader(file))
	if err != nil {
		return "", &fs.PathError{Op: "bank-read-read-all", Path: filePath, Err: err}
	}

	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", &fs.PathError{Op: "bank-read-decode", Path: filePath, Err: err}
	}

	return string(decoded), nil
}

// ParseAnnotated parses the plain-text deck format:
//
//	# comment
//	@Category deep
//	@Color #4ECDC4
//	What's your biggest fear?
//
// Every non-blank, non-directive line is a question of the latest category.
func ParseAnnotated(text string) ([]Category, error) {
	var categories []Category
	scanner := bufio.NewScanner(strings.NewReader(text))

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "@") {
			parts := strings.SplitN(line[1:], " ", 2)
			if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMalformedDirective)
			}
			value := strings.TrimSpace(parts[1])

			switch strings.ToLower(parts[0]) {
			case "category":
				categories = append(categories, Category{Name: value})
			case "color", "colour":
				if len(categories) == 0 {
					return nil, fmt.Errorf("line %d: %w", lineNo, ErrOrphanQuestion)
				}
				categories[len(categories)-1].Color = value
			default:
				return nil, fmt.Errorf("line %d: @%s: %w", lineNo, parts[0], ErrMalformedDirective)
			}
			continue
		}

		if len(categories) == 0 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrOrphanQuestion)
		}
		last := &categories[len(categories)-1]
		last.Questions = append(last.Questions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
