// Package extract provides the text-extraction capability the context
// assembler uses to turn uploaded reference documents into prompt text.
package extract

// TextExtractor converts a stored document into plain text. Implementations
// return an empty string when extraction fails so that missing or corrupt
// documents degrade to empty context instead of failing the calling
// operation.
type TextExtractor interface {
	ExtractText(path string) string
}
