// Package pkg holds the pinboard libraries.
//
// # Overview
//
// Pinboard links reference documents, the annotations quoted from them and
// the people (entities) those annotations mention, and lays the resulting
// graph out for a diagram front end.
//
//   - [record]: the three vertex kinds and their id factory
//   - [algebra]: immutable algebraic graphs (empty, vertex, overlay, connect)
//   - [pinboard]: typed attachment operations and queries on top of algebra
//   - [dag] and [dag/transform]: the working graph used by the layout
//   - [layout]: layered layout producing node and edge elements
//   - [render/nodelink]: Graphviz DOT and SVG output
//   - [session]: the current graph of a running process
//   - [board], [config]: inbound board files and settings
//   - [errors], [observability], [buildinfo]: shared infrastructure
//
// # Data Flow
//
//	seed graph + board file
//	         ↓
//	    [pinboard] (attach annotations and entities)
//	         ↓
//	    [layout] (ranks, crossing reduction, coordinates)
//	         ↓
//	    JSON elements, DOT or SVG
package pkg
