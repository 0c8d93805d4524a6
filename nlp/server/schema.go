package server

import "github.com/santhosh-tekuri/jsonschema/v5"

const summarizeSchema = `{
  "type": "object",
  "properties": {
    "text": {"type": "string", "minLength": 1},
    "sentences": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": {"type": "string", "minLength": 1},
          "tokens": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "extract_amount": {"type": "integer", "minimum": 1},
    "damping_factor": {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
    "similarity": {"enum": ["overlap", "cosine", "tfidf"]},
    "summary_format": {"enum": ["joined-string", "sentence-list", "joined", "list"]},
    "convergence_threshold": {"type": "number", "minimum": 0},
    "max_iterations": {"type": "integer", "minimum": 1},
    "update_mode": {"enum": ["gauss-seidel", "jacobi"]},
    "fold_diacritics": {"type": "boolean"}
  },
  "oneOf": [
    {"required": ["text"], "not": {"required": ["sentences"]}},
    {"required": ["sentences"], "not": {"required": ["text"]}}
  ]
}`

const segmentSchema = `{
  "type": "object",
  "required": ["text"],
  "properties": {
    "text": {"type": "string"},
    "fold_diacritics": {"type": "boolean"}
  }
}`

var (
	summarizeRequestSchema = jsonschema.MustCompileString("summarize.json", summarizeSchema)
	segmentRequestSchema   = jsonschema.MustCompileString("segment.json", segmentSchema)
)
