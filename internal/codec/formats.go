package codec

import "sndconvert/internal/tags"

// format is the static tool table for one codec.
type format struct {
	codec       Codec
	pkg         string
	analyzerPkg string

	decoder  string
	encoder  string
	analyzer string
	rule     tags.LineRule
	flags    tags.FlagTable

	decodeArgs  func(inv *Invocation, in string)
	encodeArgs  func(inv *Invocation, out string, tagArgs []tags.Arg)
	analyzeArgs func(in string) []string
}

var formats = map[Codec]format{
	MP3:  mp3Format,
	FLAC: flacFormat,
	OGG:  oggFormat,
}

// mp3info expands the escapes itself.
const mp3infoTemplate = `  artist=%a\n  album=%l\n  year=%y\n  track=%n\n  title=%t\n`

var mp3Format = format{
	codec:       MP3,
	pkg:         "lame",
	analyzerPkg: "mp3info",
	decoder:     "lame",
	encoder:     "lame",
	analyzer:    "mp3info",
	rule:        tags.VorbisCommentLines,
	flags:       tags.LameFlags,
	decodeArgs: func(inv *Invocation, in string) {
		inv.flag("--decode", "--quiet")
		inv.value(in)
		inv.flag("-")
	},
	encodeArgs: func(inv *Invocation, out string, tagArgs []tags.Arg) {
		inv.flag("-h", "-V", "0")
		inv.tagArgs(tagArgs)
		inv.flag("-")
		inv.value(out)
	},
	analyzeArgs: func(in string) []string {
		return []string{"-p", mp3infoTemplate, in}
	},
}

var flacFormat = format{
	codec:       FLAC,
	pkg:         "flac",
	analyzerPkg: "flac",
	decoder:     "flac",
	encoder:     "flac",
	analyzer:    "metaflac",
	rule:        tags.MetaflacCommentLines,
	flags:       tags.FlacFlags,
	decodeArgs: func(inv *Invocation, in string) {
		inv.flag("-dc")
		inv.value(in)
	},
	encodeArgs: func(inv *Invocation, out string, tagArgs []tags.Arg) {
		inv.flag("--silent", "--force", "-o")
		inv.value(out)
		inv.tagArgs(tagArgs)
		inv.flag("-")
	},
	analyzeArgs: func(in string) []string {
		return []string{"--list", "--block-type=VORBIS_COMMENT", in}
	},
}

var oggFormat = format{
	codec:       OGG,
	pkg:         "vorbis-tools",
	analyzerPkg: "vorbis-tools",
	decoder:     "oggdec",
	encoder:     "oggenc",
	analyzer:    "ogginfo",
	rule:        tags.VorbisCommentLines,
	flags:       tags.OggencFlags,
	decodeArgs: func(inv *Invocation, in string) {
		inv.flag("-b", "16", "-o", "-")
		inv.value(in)
	},
	encodeArgs: func(inv *Invocation, out string, tagArgs []tags.Arg) {
		inv.flag("--quiet", "-o")
		inv.value(out)
		inv.tagArgs(tagArgs)
		inv.flag("-")
	},
	analyzeArgs: func(in string) []string {
		return []string{in}
	},
}
