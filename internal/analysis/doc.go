// Package analysis measures how well an identifier column distinguishes rows.
//
// AnalyzeIDs counts null, unique, and duplicated values, ranks the most
// repeated identifiers, and grades the column by its unique percentage. Render
// and WriteReport turn a Result into the text report printed by the CLI and
// saved next to the analysed file.
package analysis
