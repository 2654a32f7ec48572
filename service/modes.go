package service

import "github.com/structcodes/assistant/domain"

// Backend model identifiers per tier.
const (
	modelFlashLite = "gemini-2.5-flash-lite"
	modelFlash     = "gemini-2.5-flash"
	modelPro       = "gemini-3-pro-preview"

	// defaultModelID serves flows where the tier is not user-selectable.
	defaultModelID = modelFlash

	// proThinkingBudget is the maximum reasoning budget for the pro model.
	proThinkingBudget = 32768
)

// Shared sampling parameters. Chat favors determinism over creativity;
// checklist generation runs even lower to keep the output schema literal.
const (
	chatTemperature      = 0.2
	chatTopP             = 0.8
	chatTopK             = 40
	checklistTemperature = 0.1
)

// modeProfile is the resolved configuration for one model mode.
type modeProfile struct {
	ModelID        string
	ThinkingBudget int // 0 means thinking config is omitted
}

// modeProfiles maps each mode to its backend model and parameters. Adding a
// tier is a one-line edit here.
var modeProfiles = map[domain.ModelMode]modeProfile{
	domain.ModelModeFast:         {ModelID: modelFlashLite},
	domain.ModelModeStandard:     {ModelID: modelFlash},
	domain.ModelModeDeepThinking: {ModelID: modelPro, ThinkingBudget: proThinkingBudget},
}

// resolveMode returns the profile for a mode, falling back to the standard
// tier for unknown values.
func resolveMode(mode domain.ModelMode) modeProfile {
	if p, ok := modeProfiles[mode]; ok {
		return p
	}
	return modeProfiles[domain.ModelModeStandard]
}
