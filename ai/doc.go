// Package ai provides the embedding abstraction used by the retrieval
// pipeline.
//
// The core pipeline depends only on the Embedder interface. Two
// implementations ship with the module:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//     (Ollama, LocalAI, vLLM) via langchaingo
//   - ai/mock: a deterministic in-process embedder for tests
//
// The same embedder instance must be used for catalog vectors and query
// vectors; mixing models makes cosine scores meaningless.
package ai
