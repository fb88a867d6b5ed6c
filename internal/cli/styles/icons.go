package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconCheck  = "\uf00c" // check
	IconX      = "\uf00d" // x
	IconInfo   = "\uf05a" // info
	IconConfig = "\ue615" // config
	IconCursor = "\uf054" // chevron-right

	// Tiling
	IconTile     = "\uf2d0" // window-maximize
	IconColumns  = "\uf0db" // columns
	IconRows     = "\uf0c9" // bars
	IconTree     = "\uf1bb" // tree
	IconFloating = "\uf24d" // clone
	IconFocus    = "\uf192" // dot-circle
)
