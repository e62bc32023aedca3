package tsserver

import "encoding/json"

// Message type tags used by the analysis subprocess protocol.
const (
	_typeRequest  = "request"
	_typeResponse = "response"
	_typeEvent    = "event"
)

// Commands understood by the analysis subprocess.
const (
	CommandOpen              = "open"
	CommandChange            = "change"
	CommandClose             = "close"
	CommandGeterr            = "geterr"
	CommandDefinition        = "definition"
	CommandNavTree           = "navtree"
	CommandCompletions       = "completions"
	CommandCompletionDetails = "completionEntryDetails"
	CommandQuickInfo         = "quickinfo"
	CommandRename            = "rename"
	CommandReferences        = "references"
	CommandNavTo             = "navto"
)

// Events emitted by the analysis subprocess without a matching request.
const (
	EventSyntaxDiag   = "syntaxDiag"
	EventSemanticDiag = "semanticDiag"
)

// requestMessage is the envelope for outgoing requests and notifications.
type requestMessage struct {
	Seq       int64       `json:"seq"`
	Type      string      `json:"type"`
	Command   string      `json:"command"`
	Arguments interface{} `json:"arguments,omitempty"`
}

// message is the envelope for incoming responses and events. Responses carry
// request_seq/success, events carry the event name. Fields not relevant to the
// message type are left at their zero values.
type message struct {
	Seq        int64           `json:"seq"`
	Type       string          `json:"type"`
	Command    string          `json:"command,omitempty"`
	RequestSeq int64           `json:"request_seq,omitempty"`
	Success    bool            `json:"success,omitempty"`
	Message    string          `json:"message,omitempty"`
	Event      string          `json:"event,omitempty"`
	Body       json.RawMessage `json:"body,omitempty"`
}

// Event is an unsolicited notification from the subprocess, forwarded verbatim
// to the registered event handler.
type Event struct {
	Name string
	Body json.RawMessage
}

// Location is a one-based line/offset position in a file.
type Location struct {
	Line   int `json:"line"`
	Offset int `json:"offset"`
}

// TextSpan is a start/end pair of one-based locations.
type TextSpan struct {
	Start Location `json:"start"`
	End   Location `json:"end"`
}

// FileSpan is a span within a named file.
type FileSpan struct {
	File  string   `json:"file"`
	Start Location `json:"start"`
	End   Location `json:"end"`
}

// Diagnostic reported by the subprocess for a single file.
type Diagnostic struct {
	Start    Location `json:"start"`
	End      Location `json:"end"`
	Text     string   `json:"text"`
	Code     int      `json:"code,omitempty"`
	Category string   `json:"category,omitempty"`
}

// DiagnosticEventBody is the body of syntaxDiag and semanticDiag events.
type DiagnosticEventBody struct {
	File        string       `json:"file"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// NavigationTree is the hierarchical symbol tree returned by navtree.
type NavigationTree struct {
	Text       string           `json:"text"`
	Kind       string           `json:"kind"`
	Spans      []TextSpan       `json:"spans"`
	ChildItems []NavigationTree `json:"childItems,omitempty"`
}

// CompletionEntry is a single completion suggestion.
type CompletionEntry struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	SortText string `json:"sortText,omitempty"`
}

// SymbolDisplayPart is one fragment of a rendered symbol description.
type SymbolDisplayPart struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// CompletionEntryDetails carries resolved documentation for one entry.
type CompletionEntryDetails struct {
	Name          string              `json:"name"`
	Kind          string              `json:"kind"`
	DisplayParts  []SymbolDisplayPart `json:"displayParts,omitempty"`
	Documentation []SymbolDisplayPart `json:"documentation,omitempty"`
}

// QuickInfoBody is the quickinfo response body backing hover.
type QuickInfoBody struct {
	Kind          string   `json:"kind"`
	Start         Location `json:"start"`
	End           Location `json:"end"`
	DisplayString string   `json:"displayString"`
	Documentation string   `json:"documentation,omitempty"`
}

// RenameInfo describes whether the location can be renamed.
type RenameInfo struct {
	CanRename          bool   `json:"canRename"`
	LocalizedErrorText string `json:"localizedErrorMessage,omitempty"`
	DisplayName        string `json:"displayName,omitempty"`
	FullDisplayName    string `json:"fullDisplayName,omitempty"`
}

// SpanGroup groups rename spans by file.
type SpanGroup struct {
	File string     `json:"file"`
	Locs []TextSpan `json:"locs"`
}

// RenameBody is the rename response body.
type RenameBody struct {
	Info RenameInfo  `json:"info"`
	Locs []SpanGroup `json:"locs"`
}

// ReferenceEntry is one reference occurrence.
type ReferenceEntry struct {
	File   string   `json:"file"`
	Start  Location `json:"start"`
	End    Location `json:"end"`
	IsDef  bool     `json:"isDefinition,omitempty"`
	IsWrit bool     `json:"isWriteAccess,omitempty"`
}

// ReferencesBody is the references response body.
type ReferencesBody struct {
	Refs []ReferenceEntry `json:"refs"`
}

// NavToItem is one workspace symbol search result.
type NavToItem struct {
	Name          string   `json:"name"`
	Kind          string   `json:"kind"`
	File          string   `json:"file"`
	Start         Location `json:"start"`
	End           Location `json:"end"`
	ContainerName string   `json:"containerName,omitempty"`
}

// FileArgs address a whole file.
type FileArgs struct {
	File string `json:"file"`
}

// FileLocationArgs address a single position in a file.
type FileLocationArgs struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Offset int    `json:"offset"`
}

// OpenArgs carry the full text of a newly opened file.
type OpenArgs struct {
	File        string `json:"file"`
	FileContent string `json:"fileContent,omitempty"`
}

// ChangeArgs describe one incremental edit.
type ChangeArgs struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	Offset       int    `json:"offset"`
	EndLine      int    `json:"endLine"`
	EndOffset    int    `json:"endOffset"`
	InsertString string `json:"insertString"`
}

// GeterrArgs request re-analysis of the listed files, first entry first.
type GeterrArgs struct {
	Files []string `json:"files"`
	Delay int      `json:"delay"`
}

// CompletionsArgs request completions at a position.
type CompletionsArgs struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Offset int    `json:"offset"`
	Prefix string `json:"prefix,omitempty"`
}

// CompletionDetailsArgs resolve documentation for named entries.
type CompletionDetailsArgs struct {
	File       string   `json:"file"`
	Line       int      `json:"line"`
	Offset     int      `json:"offset"`
	EntryNames []string `json:"entryNames"`
}

// RenameArgs request rename locations for a position.
type RenameArgs struct {
	File           string `json:"file"`
	Line           int    `json:"line"`
	Offset         int    `json:"offset"`
	FindInComments bool   `json:"findInComments,omitempty"`
	FindInStrings  bool   `json:"findInStrings,omitempty"`
}

// NavToArgs search symbols across the project containing File.
type NavToArgs struct {
	SearchValue    string `json:"searchValue"`
	File           string `json:"file"`
	MaxResultCount int    `json:"maxResultCount,omitempty"`
}
