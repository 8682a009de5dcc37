// Package samples holds the catalog query samples and the runner that
// executes them.
//
// Each sample works on its own copy of the dataset, so samples that
// reassign or mutate products never affect one another. Element lookups
// that fail report a "Not Found" style text instead of an error; only
// unexpected failures surface as errors from Runner.Run.
package samples
