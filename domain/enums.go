// Package domain defines the core domain models for the assistant backend.
package domain

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Valid reports whether the role is one of the two allowed values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModel
}

// CodeContext selects the regulatory framework in force for a session.
type CodeContext string

const (
	CodeContextSBCGeneral     CodeContext = "SBC_GENERAL"
	CodeContextSBCResidential CodeContext = "SBC_RESIDENTIAL"
	CodeContextACI318         CodeContext = "ACI_318"
)

// Valid reports whether the code context is a known value.
func (c CodeContext) Valid() bool {
	switch c {
	case CodeContextSBCGeneral, CodeContextSBCResidential, CodeContextACI318:
		return true
	}
	return false
}

// ModelMode is the performance/quality tier selected by the user.
type ModelMode string

const (
	ModelModeFast         ModelMode = "FAST"
	ModelModeStandard     ModelMode = "STANDARD"
	ModelModeDeepThinking ModelMode = "DEEP_THINKING"
)

// Valid reports whether the model mode is a known value.
func (m ModelMode) Valid() bool {
	switch m {
	case ModelModeFast, ModelModeStandard, ModelModeDeepThinking:
		return true
	}
	return false
}

// Language is the output language for inspector checklists.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Valid reports whether the language is supported.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

// CallKind identifies which flow produced a backend model call.
type CallKind string

const (
	CallKindChat      CallKind = "chat"
	CallKindChecklist CallKind = "checklist"
)

// CallStatus is the terminal status of a recorded backend call.
type CallStatus string

const (
	CallStatusSucceeded CallStatus = "succeeded"
	CallStatusFailed    CallStatus = "failed"
)
