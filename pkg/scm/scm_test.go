package scm

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func gitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %s\n%v", args, out, err)
	}
	return string(out)
}

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
		t.Fatalf("writing %v: %v", name, err)
	}
}

// initRepo sets up a throwaway repository with a deterministic identity.
func initRepo(t *testing.T) (SCM, string) {
	t.Helper()
	dir := t.TempDir()
	gitCommand(t, dir, "init")
	gitCommand(t, dir, "config", "user.email", "cidiff@example.com")
	gitCommand(t, dir, "config", "user.name", "cidiff")
	gitCommand(t, dir, "config", "commit.gpgsign", "false")
	gitCommand(t, dir, "checkout", "-B", "main")

	repo, err := FromInRepo(dir)
	if err != nil {
		t.Fatalf("opening repo: %v", err)
	}
	return repo, dir
}

func TestFromInRepoFindsRoot(t *testing.T) {
	_, dir := initRepo(t)

	subdir := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(subdir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	repo, err := FromInRepo(subdir)
	assert.NoError(t, err)
	assert.Equal(t, dir, repo.Root())
}

func TestFromInRepoOutsideRepo(t *testing.T) {
	_, err := FromInRepo(t.TempDir())
	assert.ErrorIs(t, err, ErrNoRepo)
}

func TestCurrentBranch(t *testing.T) {
	repo, dir := initRepo(t)
	assert.Equal(t, "main", repo.CurrentBranch())

	gitCommand(t, dir, "checkout", "-B", "mybranch")
	assert.Equal(t, "mybranch", repo.CurrentBranch())
}

func TestCurrentSHA(t *testing.T) {
	repo, dir := initRepo(t)

	// No commits yet.
	assert.Equal(t, "", repo.CurrentSHA())

	gitCommand(t, dir, "commit", "--allow-empty", "-m", "first")
	sha1 := repo.CurrentSHA()
	assert.NotEqual(t, "", sha1)

	gitCommand(t, dir, "commit", "--allow-empty", "-m", "second")
	sha2 := repo.CurrentSHA()
	assert.NotEqual(t, "", sha2)
	assert.NotEqual(t, sha1, sha2)
}

func TestMergeCommit(t *testing.T) {
	repo, dir := initRepo(t)
	gitCommand(t, dir, "commit", "--allow-empty", "-m", "first")

	isMerge, err := repo.MergeCommit("HEAD")
	assert.NoError(t, err)
	assert.False(t, isMerge)

	gitCommand(t, dir, "checkout", "-b", "feature")
	writeFile(t, dir, "feature.txt", "feature\n")
	gitCommand(t, dir, "add", "feature.txt")
	gitCommand(t, dir, "commit", "-m", "add feature")
	gitCommand(t, dir, "checkout", "main")
	gitCommand(t, dir, "commit", "--allow-empty", "-m", "diverge")
	gitCommand(t, dir, "merge", "--no-ff", "--no-edit", "feature")

	isMerge, err = repo.MergeCommit("HEAD")
	assert.NoError(t, err)
	assert.True(t, isMerge)
}

func TestMergeCommitOctopus(t *testing.T) {
	repo, dir := initRepo(t)
	gitCommand(t, dir, "commit", "--allow-empty", "-m", "first")

	for _, branch := range []string{"one", "two"} {
		gitCommand(t, dir, "checkout", "-b", branch, "main")
		writeFile(t, dir, branch+".txt", branch+"\n")
		gitCommand(t, dir, "add", branch+".txt")
		gitCommand(t, dir, "commit", "-m", "add "+branch)
	}
	gitCommand(t, dir, "checkout", "main")
	gitCommand(t, dir, "merge", "--no-edit", "one", "two")

	_, err := repo.MergeCommit("HEAD")
	assert.ErrorContains(t, err, "parents")
}

func TestCommitSubject(t *testing.T) {
	repo, dir := initRepo(t)
	gitCommand(t, dir, "commit", "--allow-empty", "-m", "Merge pull request #42 from foo/bar")

	subject, err := repo.CommitSubject("HEAD")
	assert.NoError(t, err)
	assert.Equal(t, "Merge pull request #42 from foo/bar", subject)
}

func TestMergeBaseAndRevParse(t *testing.T) {
	repo, dir := initRepo(t)
	gitCommand(t, dir, "commit", "--allow-empty", "-m", "first")
	forkPoint := repo.CurrentSHA()

	gitCommand(t, dir, "checkout", "-b", "feature")
	gitCommand(t, dir, "commit", "--allow-empty", "-m", "on feature")
	gitCommand(t, dir, "checkout", "main")
	gitCommand(t, dir, "commit", "--allow-empty", "-m", "on main")

	base, err := repo.MergeBase("main", "feature")
	assert.NoError(t, err)
	assert.Equal(t, forkPoint, base)

	sha, err := repo.RevParse("feature")
	assert.NoError(t, err)
	assert.Len(t, sha, 40)

	_, err = repo.RevParse("no-such-revision")
	assert.Error(t, err)
}

func TestChangedFiles(t *testing.T) {
	repo, dir := initRepo(t)
	writeFile(t, dir, "a.txt", "a\n")
	gitCommand(t, dir, "add", "a.txt")
	gitCommand(t, dir, "commit", "-m", "add a")
	baseSHA := repo.CurrentSHA()

	gitCommand(t, dir, "checkout", "-b", "feature")
	writeFile(t, dir, "b.txt", "b\n")
	gitCommand(t, dir, "add", "b.txt")
	gitCommand(t, dir, "commit", "-m", "add b")

	// A worktree modification and an untracked file.
	writeFile(t, dir, "a.txt", "a changed\n")
	writeFile(t, dir, "c.txt", "c\n")

	files, err := repo.ChangedFiles(baseSHA, "HEAD", "")
	assert.NoError(t, err)
	assert.Contains(t, files, "a.txt")
	assert.Contains(t, files, "b.txt")
	assert.Contains(t, files, "c.txt")
}

func TestChangedFilesBadCommit(t *testing.T) {
	repo, dir := initRepo(t)
	writeFile(t, dir, "a.txt", "a\n")
	gitCommand(t, dir, "add", "a.txt")
	gitCommand(t, dir, "commit", "-m", "add a")

	_, err := repo.ChangedFiles("0000000000000000000000000000000000000000", "HEAD", "")
	assert.ErrorContains(t, err, "does not exist")
}

func TestCheckedInFiles(t *testing.T) {
	repo, dir := initRepo(t)
	writeFile(t, dir, "a.txt", "a\n")
	writeFile(t, dir, "untracked.txt", "nope\n")
	gitCommand(t, dir, "add", "a.txt")
	gitCommand(t, dir, "commit", "-m", "add a")

	files, err := repo.CheckedInFiles()
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, files)
}

func TestPreviousContent(t *testing.T) {
	repo, dir := initRepo(t)
	writeFile(t, dir, "a.txt", "old\n")
	gitCommand(t, dir, "add", "a.txt")
	gitCommand(t, dir, "commit", "-m", "add a")
	oldSHA := repo.CurrentSHA()

	writeFile(t, dir, "a.txt", "new\n")
	gitCommand(t, dir, "add", "a.txt")
	gitCommand(t, dir, "commit", "-m", "change a")

	content, err := repo.PreviousContent(oldSHA, "a.txt")
	assert.NoError(t, err)
	assert.Equal(t, "old\n", string(content))

	_, err = repo.PreviousContent("", "a.txt")
	assert.Error(t, err)
}
