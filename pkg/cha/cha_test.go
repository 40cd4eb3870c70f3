package cha

import "testing"

func TestKindHasIsBitwise(t *testing.T) {
	k := KindDir | KindHidden
	if !k.Has(KindDir) || !k.Has(KindHidden) {
		t.Fatalf("expected both flags set on %v", k)
	}
	if k.Has(KindLink) || k.Has(KindOrphan) {
		t.Fatalf("unexpected flags set on %v", k)
	}
}

func TestChaPredicatesMatchKind(t *testing.T) {
	c := Cha{Kind: KindLink | KindHidden}
	if !c.IsLink() || !c.IsHidden() {
		t.Fatalf("expected link+hidden, got %+v", c)
	}
	if c.IsDir() || c.IsOrphan() {
		t.Fatalf("unexpected predicate true on %+v", c)
	}
}

func TestFromRemoteSynthesizesPermissionsAndOwnership(t *testing.T) {
	c := FromRemote(RemoteMeta{IsDir: true, ContentLength: 42}, 1000, 1000)

	if !c.IsDir() {
		t.Fatalf("expected directory flag")
	}
	if c.Permissions != RemotePermissions {
		t.Fatalf("expected synthesized permissions 0774, got %o", c.Permissions)
	}
	if c.UID != 1000 || c.GID != 1000 {
		t.Fatalf("expected synthesized uid/gid, got %d/%d", c.UID, c.GID)
	}
	if c.Len != 42 {
		t.Fatalf("expected length 42, got %d", c.Len)
	}
}
