package sstree

import "errors"

// ErrEmptyTree reports a tree with no inserted points. No function in this
// package returns it: Search on an empty tree visits nothing and Len
// reports 0.
var ErrEmptyTree = errors.New("sstree: tree is empty")
