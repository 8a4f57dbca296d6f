/*
Package archwize generates Mermaid.js flowcharts from natural-language
descriptions.

A prompt is expanded into a model instruction, sent to an upstream
text-generation service, and the raw completion is pushed through the repair
pipeline in pkg/mermaid until it is syntactically valid flowchart source.
When the upstream call fails or returns nothing usable, a hand-authored topic
template answers instead, so generation never fails.
*/
package archwize
