// Copyright (c) 2021-2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package git lists the tags of a git repository, either by reading the repository directly or
// by running the git executable.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrRepositoryNotFound is returned when a path is not within a git repository.
var ErrRepositoryNotFound = errors.New("git repository not found")

// Repository lists tags by reading a git repository directly.
type Repository struct {
	path string
}

// NewRepository returns a Repository for the git repository containing path. The repository is
// opened on each call to Tags, so tags created in the meantime are seen.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// open opens the git repository containing r.path.
func (r *Repository) open() (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(r.path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: %v", ErrRepositoryNotFound, r.path)
	}
	return repo, err
}

// Tags returns the short names of all tags in the repository, in no particular order. Both
// annotated and lightweight tags are included.
func (r *Repository) Tags() ([]string, error) {
	repo, err := r.open()
	if err != nil {
		return nil, err
	}

	// Note that we cannot use repo.TagObjects() directly, since that returns objects that are not
	// referenced (for example, deleted tags.)
	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("while listing tags: %w", err)
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("while listing tags: %w", err)
	}

	return names, nil
}
