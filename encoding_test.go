package khmerlegacy_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/khmerlegacy"
	"github.com/npillmayer/khmerlegacy/fontdata"
	"github.com/npillmayer/schuko/testconfig"
	"golang.org/x/text/transform"
)

func TestEncodingStrings(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cv := khmerlegacy.NewConverter(loadRegistry(t))
	enc, err := cv.Encoding("Test Font S1")
	if err != nil {
		t.Fatal(err)
	}
	u, err := enc.NewDecoder().String("eka\tkSu\n")
	if err != nil {
		t.Fatal(err)
	}
	if u != "កោ\tក្សុ\n" {
		t.Errorf("unexpected decoding %U", []rune(u))
	}
	l, err := enc.NewEncoder().String(u)
	if err != nil {
		t.Fatal(err)
	}
	if l != "eka\tkSv\n" {
		t.Errorf("unexpected encoding %q", l)
	}
	b, err := enc.NewDecoder().Bytes([]byte{'k', 0xE9})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "កé" {
		t.Errorf("expected bytes above 0x7F to decode as Latin-1 units, have %U", []rune(string(b)))
	}
}

func TestEncodingStream(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cv := khmerlegacy.NewConverter(loadRegistry(t))
	enc, err := cv.Encoding("testfont")
	if err != nil {
		t.Fatal(err)
	}
	legacy := strings.Repeat("eka kSu\n", 1000)
	unicode := strings.Repeat("កោ ក្សុ\n", 1000)
	r := transform.NewReader(strings.NewReader(legacy), enc.NewDecoder())
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != unicode {
		t.Errorf("stream decoding differs, have %d bytes, expected %d", len(out), len(unicode))
	}
	r = transform.NewReader(strings.NewReader(unicode), enc.NewEncoder())
	out, err = io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != strings.Repeat("eka kSv\n", 1000) {
		t.Errorf("stream encoding differs, have %d bytes", len(out))
	}
}

func TestEncodingStreamWithoutWhitespace(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cv := khmerlegacy.NewConverter(loadRegistry(t))
	enc, err := cv.Encoding("testfont")
	if err != nil {
		t.Fatal(err)
	}
	r := transform.NewReader(strings.NewReader(strings.Repeat("ka", 3000)), enc.NewDecoder())
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("decoding 6000 bytes without white-space failed: %v", err)
	}
	if string(out) != strings.Repeat("កា", 3000) {
		t.Errorf("stream decoding differs, have %d bytes", len(out))
	}
	for _, unicode := range []string{
		strings.Repeat("កា", 1000),
		strings.Repeat("កា\u200b", 1000),
		strings.Repeat("ក្កា", 500),
	} {
		r = transform.NewReader(strings.NewReader(unicode), enc.NewEncoder())
		out, err = io.ReadAll(r)
		if err != nil {
			t.Fatalf("encoding %d bytes without white-space failed: %v", len(unicode), err)
		}
		expected, _ := cv.UnicodeToLegacy(unicode, "testfont")
		if string(out) != expected {
			t.Errorf("stream encoding of %d bytes differs, have %d bytes, expected %d",
				len(unicode), len(out), len(expected))
		}
	}
}

func TestEncodingUnknownFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cv := khmerlegacy.NewConverter(loadRegistry(t))
	if _, err := cv.Encoding("Limon S1"); !errors.Is(err, fontdata.ErrUnknownFont) {
		t.Errorf("expected unknown font error, is %v", err)
	}
}
