package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the types persisted in the cache store.

// IDMUS serializes course IDs.
var IDMUS = idMUS{}

type idMUS struct{}

var _ mus.Serializer[ID] = idMUS{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// Vectors are stored raw (4 bytes per component): dense float32 data gains
// nothing from varint encoding.
var (
	vectorMUS  = ord.NewSliceSer[float32](raw.Float32)
	vectorsMUS = ord.NewSliceSer[[]float32](vectorMUS)
	idSliceMUS = ord.NewSliceSer[ID](IDMUS)
	abbrMapMUS = ord.NewMapSer[string, string](ord.String, ord.String)
)

// CacheEntryMUS serializes cache entries.
var CacheEntryMUS = cacheEntryMUS{}

type cacheEntryMUS struct{}

var _ mus.Serializer[CacheEntry] = cacheEntryMUS{}

func (cacheEntryMUS) Marshal(e CacheEntry, bs []byte) (n int) {
	n = ord.String.Marshal(string(e.Fingerprint), bs)
	n += varint.Int.Marshal(e.Dimension, bs[n:])
	n += idSliceMUS.Marshal(e.CourseIds, bs[n:])
	n += vectorsMUS.Marshal(e.Vectors, bs[n:])
	n += abbrMapMUS.Marshal(e.Abbreviations, bs[n:])
	n += varint.Int64.Marshal(e.CreatedAt.UnixMicro(), bs[n:])
	return n
}

func (cacheEntryMUS) Unmarshal(bs []byte) (e CacheEntry, n int, err error) {
	var (
		fp        string
		createdAt int64
		c         int
	)
	fp, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	e.Fingerprint = Fingerprint(fp)

	e.Dimension, c, err = varint.Int.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}

	e.CourseIds, c, err = idSliceMUS.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}

	e.Vectors, c, err = vectorsMUS.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}

	var abbr map[string]string
	abbr, c, err = abbrMapMUS.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}
	e.Abbreviations = abbr

	createdAt, c, err = varint.Int64.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}
	e.CreatedAt = time.UnixMicro(createdAt).UTC()
	return
}

func (cacheEntryMUS) Size(e CacheEntry) (size int) {
	size = ord.String.Size(string(e.Fingerprint))
	size += varint.Int.Size(e.Dimension)
	size += idSliceMUS.Size(e.CourseIds)
	size += vectorsMUS.Size(e.Vectors)
	size += abbrMapMUS.Size(e.Abbreviations)
	size += varint.Int64.Size(e.CreatedAt.UnixMicro())
	return size
}

func (cacheEntryMUS) Skip(bs []byte) (n int, err error) {
	var c int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	for _, skip := range []func([]byte) (int, error){
		varint.Int.Skip,
		idSliceMUS.Skip,
		vectorsMUS.Skip,
		abbrMapMUS.Skip,
		varint.Int64.Skip,
	} {
		c, err = skip(bs[n:])
		n += c
		if err != nil {
			return
		}
	}
	return
}
