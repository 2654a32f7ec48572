package prompt

import (
	"strings"
	"testing"

	"github.com/structcodes/assistant/domain"
)

func TestSelectChatInstructionDeterministic(t *testing.T) {
	contexts := []domain.CodeContext{
		domain.CodeContextSBCGeneral,
		domain.CodeContextSBCResidential,
		domain.CodeContextACI318,
	}
	for _, c := range contexts {
		first := SelectChatInstruction(c)
		second := SelectChatInstruction(c)
		if first != second {
			t.Fatalf("instruction for %s is not deterministic", c)
		}
		if first == "" {
			t.Fatalf("instruction for %s is empty", c)
		}
	}
}

func TestSelectChatInstructionScoping(t *testing.T) {
	tests := []struct {
		context  domain.CodeContext
		contains []string
		excludes []string
	}{
		{
			context:  domain.CodeContextSBCGeneral,
			contains: []string{"SBC 201", "SBC 301", "SBC 304", "KEYWORD MAPPING"},
			excludes: []string{"ACTIVE CODE MODE: ACI 318-19", "ACTIVE CODE MODE: SAUDI RESIDENTIAL"},
		},
		{
			context:  domain.CodeContextSBCResidential,
			contains: []string{"SBC 1101", "residential buildings (villas)"},
			excludes: []string{"ACI 318-19", "KEYWORD MAPPING"},
		},
		{
			context:  domain.CodeContextACI318,
			contains: []string{"ACI 318-19", "American Concrete Institute"},
			excludes: []string{"SBC 1101", "KEYWORD MAPPING"},
		},
	}

	for _, tt := range tests {
		got := SelectChatInstruction(tt.context)
		for _, want := range tt.contains {
			if !strings.Contains(got, want) {
				t.Errorf("%s instruction missing %q", tt.context, want)
			}
		}
		for _, forbidden := range tt.excludes {
			if strings.Contains(got, forbidden) {
				t.Errorf("%s instruction must not contain %q", tt.context, forbidden)
			}
		}
	}
}

func TestSelectChatInstructionCommonSections(t *testing.T) {
	for _, c := range []domain.CodeContext{
		domain.CodeContextSBCGeneral,
		domain.CodeContextSBCResidential,
		domain.CodeContextACI318,
	} {
		got := SelectChatInstruction(c)
		for _, section := range []string{
			"TUV SUD Inspection and Design AI Assistant",
			"LANGUAGE PROTOCOL (STRICT)",
			"Mathematical Equations",
			"Detailed Risk Assessment (CRITICAL)",
			"Executive Summary",
			"`$$`",
		} {
			if !strings.Contains(got, section) {
				t.Errorf("%s instruction missing common section %q", c, section)
			}
		}
	}
}

func TestSelectChatInstructionUnknownFallsBackToGeneral(t *testing.T) {
	got := SelectChatInstruction(domain.CodeContext("BOGUS"))
	if !strings.Contains(got, "SAUDI GENERAL BUILDING CODE") {
		t.Fatal("unknown context should fall back to the general code mandate")
	}
}
