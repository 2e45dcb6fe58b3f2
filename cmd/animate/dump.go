package main

import (
	"io"
	"strconv"

	"github.com/valyala/quicktemplate"
)

func writeFrameDump(w io.Writer, rows []frameRow, digest uint64) {
	qw := quicktemplate.AcquireWriter(w)
	streamFrameDump(qw, rows, digest)
	quicktemplate.ReleaseWriter(qw)
}

func streamFrameDump(qw *quicktemplate.Writer, rows []frameRow, digest uint64) {
	qw.N().S("# frame x opacity scale shadowX pending\n")
	for _, r := range rows {
		qw.N().D(r.Frame)
		qw.N().S(" ")
		qw.N().FPrec(r.X, 4)
		qw.N().S(" ")
		qw.N().FPrec(r.Opacity, 4)
		qw.N().S(" ")
		qw.N().FPrec(r.Scale, 4)
		qw.N().S(" ")
		qw.N().FPrec(r.ShadowX, 4)
		qw.N().S(" ")
		qw.N().D(r.Pending)
		qw.N().S("\n")
	}
	qw.N().S("# digest ")
	qw.N().S(strconv.FormatUint(digest, 16))
	qw.N().S("\n")
}
