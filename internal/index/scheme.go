package index

var (
	bMeta    = []byte("meta")        // slug -> metaBytes
	bOrder   = []byte("order")       // position key -> slug (canonical flatten order)
	bPos     = []byte("pos")         // slug -> position key
	bSection = []byte("idx_section") // section -> sub-bucket of position key -> slug
	bSys     = []byte("sys")         // build bookkeeping (fingerprint)
)

var kFingerprint = []byte("fingerprint")
