// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ident generates entity identifiers and product codes.
package ident

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entity ID prefixes.
const (
	CategoryPrefix = "cat"
	ImagePrefix    = "img"
)

const (
	// UnknownPrefix is used when a product code has no category name.
	UnknownPrefix = "UNK"

	codeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeRandLen   = 3
	codeNumberMin = 100
	codeNumberMax = 999
)

// Generator produces IDs and product codes from a randomness source.
// The zero value is not usable; call NewGenerator or use Default.
type Generator struct {
	rand io.Reader
}

// Default draws from crypto/rand.
var Default = NewGenerator(nil)

// NewGenerator returns a Generator reading randomness from r.
// A nil reader means crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// NewEntityID returns prefix_<uuidv7>. Version 7 UUIDs lead with a
// millisecond timestamp and are monotonic within the process, so IDs issued
// here never repeat and sort by creation time.
func (g *Generator) NewEntityID(prefix string) (string, error) {
	id, err := uuid.NewV7FromReader(g.rand)
	if err != nil {
		return "", fmt.Errorf("generate %s id: %w", prefix, err)
	}
	return prefix + "_" + id.String(), nil
}

// GenerateProductCode returns a label shaped XXX-YYY-NNN: the first three
// characters of categoryName upper-cased (UNK when empty), three random
// upper-case alphanumerics and a number in [100, 999]. Codes are cosmetic
// and may collide.
func (g *Generator) GenerateProductCode(categoryName string) (string, error) {
	suffix := make([]byte, codeRandLen)
	for i := range suffix {
		n, err := rand.Int(g.rand, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("product code chars: %w", err)
		}
		suffix[i] = codeAlphabet[n.Int64()]
	}

	n, err := rand.Int(g.rand, big.NewInt(codeNumberMax-codeNumberMin+1))
	if err != nil {
		return "", fmt.Errorf("product code number: %w", err)
	}

	return fmt.Sprintf("%s-%s-%d", CodePrefix(categoryName), suffix, codeNumberMin+n.Int64()), nil
}

// CodePrefix returns the upper-cased first three characters of name, or
// UnknownPrefix when name is blank.
func CodePrefix(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return UnknownPrefix
	}
	end := 0
	for i := 0; i < 3 && end < len(name); i++ {
		_, size := utf8.DecodeRuneInString(name[end:])
		end += size
	}
	return cases.Upper(language.Und).String(name[:end])
}

// NewEntityID issues an ID from the default generator.
func NewEntityID(prefix string) (string, error) {
	return Default.NewEntityID(prefix)
}

// GenerateProductCode issues a product code from the default generator.
func GenerateProductCode(categoryName string) (string, error) {
	return Default.GenerateProductCode(categoryName)
}
