package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconFolder  = "\uf07b" // folder
	IconConfig  = "\ue615" // config
	IconImage   = "\uf1c5" // image file
	IconSchema  = "\uf1c9" // code file
	IconZoom    = "\uf00e" // search-plus
)

const (
	cursorEmpty    = "  "
	cursorSelected = "\u25b8 " // ▸ Black right-pointing small triangle
)
