// Package md2rtf combines Markdown documents into a single optimized RTF file.
//
// # Quick Start
//
// Create a converter and convert a batch of documents:
//
//	conv := md2rtf.NewConverter()
//
//	result, err := conv.Convert(ctx, md2rtf.Input{
//	    Documents: []md2rtf.Document{
//	        {Name: "intro", Content: "# Hello\n\nWorld"},
//	        {Name: "notes", Content: "## Notes\n\n- item"},
//	    },
//	    Optimize: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("combined.rtf", result.RTF, 0644)
//
// The result contains the assembled RTF document (result.RTF) and, when
// Input.Optimize is set, size statistics (result.Stats) describing how much
// the optimization pass shrank the output.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Deduplication (documents with identical trimmed content are dropped)
//  2. Markdown normalization (blank-line and whitespace cleanup, code preserved)
//  3. Per-document Markdown to RTF rendering (line-oriented, two fonts,
//     three heading sizes)
//  4. Assembly (header, title block, page breaks between documents)
//  5. RTF optimization (ordered textual rewrites removing redundant control
//     sequences, whitespace, and empty groups)
//
// Stages 1, 2, and 5 run only when Input.Optimize is true; they form one
// combined toggle. Stage 3 may run in parallel across documents; fragments
// are always reassembled in input order.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2rtf.NewConverter(
//	    md2rtf.WithWorkers(4),
//	    md2rtf.WithFonts("Georgia", "Consolas"),
//	)
//
// # HTML Preview
//
// Set Input.HTMLPreview to also receive the combined Markdown rendered as a
// standalone HTML5 document (result.HTML) via Goldmark, useful for inspecting
// the merged content before distributing the RTF.
package md2rtf
