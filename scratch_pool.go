package tscodec

import "sync"

// poolOfScratch global variable is used to ease access to the pool from the
// serialization wrapper
var poolOfScratch = &poolScratch{
	sp: sync.Pool{
		New: func() interface{} {
			return &scratchEnvelope{bs: make([]byte, maxEnvelopeSize)}
		},
	},
}

// scratchEnvelope is an object holding one maximum-size envelope region
type scratchEnvelope struct {
	bs []byte
}

// poolScratch is a pool for the scratch regions used by Serialize()
// Don't use it anywhere else to avoid pool pollution
type poolScratch struct {
	sp sync.Pool
}

func (ps *poolScratch) get() *scratchEnvelope {
	s, _ := ps.sp.Get().(*scratchEnvelope)
	return s
}

// put returns the scratch region back to the pool
// Don't use the scratch after a call to put
func (ps *poolScratch) put(s *scratchEnvelope) {
	ps.sp.Put(s)
}
