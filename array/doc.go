// Package array is the boundary to the dense array primitive.
//
// The labeled containers never run numeric kernels themselves: they ask a
// Service to allocate buffers, apply elementwise functions, combine two
// buffers positionally and reduce. The Service's dtype inference is
// authoritative.
//
// Dense is the default in-memory implementation.
package array
