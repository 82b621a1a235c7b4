package textimage

// CanvasHeight returns the canvas height for lineCount lines spaced
// lineHeight apart. One extra line of padding leaves room below the last
// baseline, so the result always exceeds lineCount*lineHeight for a
// positive lineHeight.
func CanvasHeight(lineCount, lineHeight int) int {
	return (lineCount + 1) * lineHeight
}
