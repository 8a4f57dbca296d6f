/*
Package mermaid repairs and normalizes Mermaid flowchart source produced by a
text-generation model.

Upstream output is treated as untrusted: fences, stray arrows in the graph
declaration, missing node labels, doubled condition pipes and omitted edge
arrows are all corrected deterministically. Statements are parsed into a small
grammar model (node declarations and edges) and re-rendered, so every output is
syntactically valid flowchart source and the pipeline is idempotent.
*/
package mermaid
