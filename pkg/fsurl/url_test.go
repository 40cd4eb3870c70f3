package fsurl

import "testing"

func TestJoinPreservesScheme(t *testing.T) {
	u := Remote("s3", "/bucket")
	joined := u.Join("object.txt")
	if joined.Scheme != "s3" {
		t.Fatalf("expected scheme s3, got %q", joined.Scheme)
	}
	if joined.Path != "/bucket/object.txt" {
		t.Fatalf("expected /bucket/object.txt, got %q", joined.Path)
	}
}

func TestParentAtRoot(t *testing.T) {
	u := Local("/")
	if _, ok := u.Parent(); ok {
		t.Fatalf("expected no parent at root")
	}
}

func TestFileNameAndStem(t *testing.T) {
	u := Local("/tmp/archive.tar.gz")
	if got := u.FileName(); got != "archive.tar.gz" {
		t.Fatalf("expected archive.tar.gz, got %q", got)
	}
	if got := u.FileStem(); got != "archive.tar" {
		t.Fatalf("expected archive.tar, got %q", got)
	}
}

func TestIsRemote(t *testing.T) {
	if Local("/a").IsRemote() {
		t.Fatalf("local url should not be remote")
	}
	if !Remote("sftp", "/a").IsRemote() {
		t.Fatalf("remote url should be remote")
	}
}

func TestEqual(t *testing.T) {
	a := Local("/a/b")
	b := Local("/a/b")
	c := Remote("sftp", "/a/b")
	if !a.Equal(b) {
		t.Fatalf("expected equal")
	}
	if a.Equal(c) {
		t.Fatalf("expected not equal across schemes")
	}
}
