package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetChoice_Valid(t *testing.T) {
	var out bytes.Buffer
	idx, err := GetChoice(rdr("3\n"), "Pick", 4, &out)
	if err != nil || idx != 2 {
		t.Fatalf("got %d, err=%v", idx, err)
	}
}

func TestGetChoice_OutOfRangeAndGarbage(t *testing.T) {
	var out bytes.Buffer
	if _, err := GetChoice(rdr("9\n"), "Pick", 4, &out); err == nil {
		t.Fatal("expected out-of-range error")
	}
	if _, err := GetChoice(rdr("abc\n"), "Pick", 4, &out); err == nil {
		t.Fatal("expected parse error")
	}
}
