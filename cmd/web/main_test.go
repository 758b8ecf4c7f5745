package main

import (
	"strings"
	"testing"
)

func TestRenderPage(t *testing.T) {
	page := renderPage("arcade.example", "2022")
	for _, want := range []string{
		"ssh -t -p 2022 arcade.example shooter",
		"ssh -t -p 2022 arcade.example kaleidoscope",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(page, "{{") {
		t.Error("unfilled placeholder left in page")
	}
}
