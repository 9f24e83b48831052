// Package styles provides style descriptors and design tokens for commonui
// components.
//
// A Style is a flat map from property name to value. Components build their
// final style by collapsing layers, later layers winning:
//
//	container := styles.Collapse(base, fullWidth, callerStyle)
//
// PlatformStyles carries a common branch plus electron and mobile branches;
// Resolve picks the branch for the current platform. Tokens (colors,
// margins, border radius) are read-only constants shared by all components.
package styles
