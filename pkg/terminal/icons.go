package terminal

// Icons for terminal output
const (
	IconSuccess = "✅"
	IconError   = "❌"
	IconWarning = "⚠️"
	IconInfo    = "ℹ️"
	IconFolder  = "📁"
	IconFile    = "📄"
	IconLink    = "🔗"
	IconPackage = "📦"
	IconRun     = "▶"
	IconWatch   = "👀"
	IconCPU     = "🧮"
	IconCheck   = "✓"
	IconCross   = "✗"
	IconArrow   = "→"
	IconDot     = "•"
)
