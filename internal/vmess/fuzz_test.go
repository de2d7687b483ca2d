package vmess

import "testing"

func FuzzDecode(f *testing.F) {
	f.Add(fixtureLink)
	f.Add(sortedKeysLink)
	f.Add("vmess://")
	f.Add("vmess://e30=")

	f.Fuzz(func(t *testing.T, in string) {
		l, err := Decode(in)
		if err != nil {
			return
		}
		out, err := Encode(l)
		if err != nil {
			t.Fatalf("encode after decode: %v", err)
		}
		again, err := Decode(out)
		if err != nil {
			t.Fatalf("decode after encode: %v", err)
		}
		if again != l && !sameLink(again, l) {
			t.Fatalf("round trip changed link: %+v != %+v", again, l)
		}
	})
}

func sameLink(a, b Link) bool {
	eq := func(x, y *string) bool {
		if x == nil || y == nil {
			return x == y
		}
		return *x == *y
	}
	pa, pb := a, b
	pa.SNI, pa.ALPN, pa.FP = nil, nil, nil
	pb.SNI, pb.ALPN, pb.FP = nil, nil, nil
	return pa == pb && eq(a.SNI, b.SNI) && eq(a.ALPN, b.ALPN) && eq(a.FP, b.FP)
}
