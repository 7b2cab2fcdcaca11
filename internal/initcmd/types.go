package initcmd

import "io/fs"

type Action string

const (
	ActionCreate    Action = "create"
	ActionOverwrite Action = "overwrite"
	ActionAppend    Action = "append"
	ActionSkip      Action = "skip"
)

type op struct {
	Action Action
	Path   string // relative (for reporting)
	Abs    string // absolute target
	Mode   fs.FileMode
	Data   string
}

// Result lists what a run did (or would do, for a dry run) in write order.
type Result struct {
	Dir     string
	Actions []Entry
}

type Entry struct {
	Action Action
	Path   string
}
