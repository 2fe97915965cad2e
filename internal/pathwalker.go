package internal

import (
	"errors"
	"io"

	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"
)

// ChangeFilter decides whether a commit is of interest given the names of the
// files that changed between it and its successor in the log.
type ChangeFilter func(commit *object.Commit, changed []string) bool

// changeIter walks a commit log and yields the commits whose diff against the
// next commit in the log is accepted by the filter. The log is assumed to be
// linear, each commit is diffed against the one that follows it.
type changeIter struct {
	filter  ChangeFilter
	source  object.CommitIter
	current *object.Commit
}

// NewChangeIter wraps a commit log, normally from Repository.Log, so that only
// the commits accepted by filter are returned.
func NewChangeIter(filter ChangeFilter, log object.CommitIter) object.CommitIter {
	return &changeIter{
		filter: filter,
		source: log,
	}
}

func (c *changeIter) Next() (*object.Commit, error) {
	if c.current == nil {
		commit, err := c.source.Next()
		if err != nil {
			return nil, err
		}

		c.current = commit
	}

	commit, err := c.nextMatch()
	if err != nil {
		c.current = nil
	}

	return commit, err
}

func (c *changeIter) nextMatch() (*object.Commit, error) {
	var parentTree *object.Tree

	for {
		parent, err := c.source.Next()
		if errors.Is(err, io.EOF) {
			parent = nil
		} else if err != nil {
			return nil, err
		}

		currentTree := parentTree
		if currentTree == nil {
			currentTree, err = c.current.Tree()
			if err != nil {
				return nil, err
			}
		}

		parentTree = nil

		if parent != nil {
			parentTree, err = parent.Tree()
			if err != nil {
				return nil, err
			}
		}

		changes, err := object.DiffTree(currentTree, parentTree)
		if err != nil {
			return nil, err
		}

		candidate := c.current
		c.current = parent

		if c.filter(candidate, changedNames(changes)) {
			return candidate, nil
		}

		if parent == nil {
			return nil, io.EOF
		}
	}
}

func changedNames(changes object.Changes) []string {
	names := make([]string, 0, len(changes))

	for _, change := range changes {
		name := change.From.Name
		if name == "" {
			name = change.To.Name
		}

		names = append(names, name)
	}

	return names
}

func (c *changeIter) ForEach(cb func(*object.Commit) error) error {
	for {
		commit, err := c.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		err = cb(commit)
		if errors.Is(err, storer.ErrStop) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (c *changeIter) Close() {
	c.source.Close()
}
