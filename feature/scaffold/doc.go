// Package scaffold creates pipeline directory trees from declarative
// outlines and tidies them afterwards.
//
// # Outlines
//
// An outline is a nested mapping of folder names, usually written as YAML:
//
//	assets:
//	  model:
//	  texture:
//	renders:
//
// [Create] materializes an outline under a destination root. Existing
// directories are left alone, so re-running an outline over a partially
// built tree fills in only what is missing.
//
// # Validation
//
// [CanCreate] answers whether a path is safe to create on conservative
// shared storage, which in a mixed-OS studio means the Windows rules:
// no reserved device names or invalid characters in any element, total
// length within the classic MAX_PATH limit, and a writable nearest
// existing ancestor.
package scaffold
