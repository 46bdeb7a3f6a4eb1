package types

// Sentinel markers delimiting the autogenerated region of a notes document.
// These are fixed values shared with the CI workflows that consume the output,
// so they are not configurable.
const (
	NotesStartSentinel = "<!--- START AUTOGENERATED NOTES --->"
	NotesEndSentinel   = "<!--- END AUTOGENERATED NOTES --->"
	NotesSkipSentinel  = "<!--- SKIP AUTOGENERATED NOTES --->"
)

// Default rendering configuration
const (
	DefaultHeader         = "## Contents"
	DefaultListItemSymbol = "- [x] "
)

// Fixed trailing section headings. OtherHeading also receives commits whose
// code is not present in the mapping.
const (
	OtherHeading         = "### Other"
	UncategorisedHeading = "### Uncategorised!"
)
