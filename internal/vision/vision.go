package vision

// AnalysisPrompt is the shared prompt used by all vision adapters. The model
// is asked for strict JSON so the response parses without heuristics.
const AnalysisPrompt = `You are inspecting photos of a physical item exchanged in a rental handover.
Assess the item's condition and any visible damage (scratches, dents, stains,
missing parts, wear). Respond with ONLY a JSON object, no prose:
{"summary": "<one or two sentences on overall condition>",
 "damageDetected": <true|false>,
 "damageDescription": "<description of damage, or null if none>",
 "conditionScore": <integer 1-10, 10 = like new>}`
