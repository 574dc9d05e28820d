// Package prompt builds all LLM prompt text for the investigation engine
// and parses the structured JSON the model returns. Builders are stateless;
// all state arrives through parameters. Parsing is tolerant: fenced code
// blocks, surrounding prose, and scalar-for-list mistakes are accepted.
package prompt

// systemInvestigator is the shared system prompt for investigation phases.
const systemInvestigator = `You are an expert Site Reliability Engineer conducting a root-cause investigation.
You reason from evidence, not speculation: every claim must trace back to a tool result,
a metric, a log line, or retrieved knowledge. When evidence is missing, say so.
Respond ONLY with the JSON object requested — no prose before or after it.`

// systemAssistant is the system prompt for free-form (non-incident) queries.
const systemAssistant = `You are an expert Site Reliability Engineer assistant. You answer operational
questions using the available tools and retrieved knowledge. Prefer checking real data over
guessing. Cite tool results by their resultId when you rely on them.`

// triageTemplate asks for the structured triage verdict.
// %s = user query, %s = gathered context sections.
const triageTemplate = `Triage the following report and characterize the incident.

## Report
%s

%s
Respond with a JSON object:
{
  "summary": "one-paragraph description of what is happening",
  "affectedServices": ["service names, most affected first"],
  "symptoms": ["observable symptoms"],
  "errorMessages": ["verbatim error messages seen, if any"],
  "severity": "low|medium|high|critical",
  "timeWindow": {"start": "RFC3339 timestamp", "end": "RFC3339 timestamp"}
}
Use null for fields you cannot determine. Do not invent services or error messages.`

// hypothesisTemplate asks for 1-5 ranked root-cause hypotheses.
// %s = triage summary block.
const hypothesisTemplate = `Based on the triage below, propose between 1 and 5 root-cause hypotheses.

%s
Rules:
- Each hypothesis must be a single testable statement about a cause, not a symptom.
- Cover distinct failure classes (deploy, capacity, dependency, configuration, infrastructure).
- priority 1 is the most likely; do not assign the same priority twice.

Respond with a JSON array:
[
  {
    "statement": "specific testable root-cause statement",
    "category": "infrastructure|application|dependency|configuration|capacity",
    "priority": 1,
    "confirmingEvidence": "what observation would confirm this",
    "refutingEvidence": "what observation would refute this",
    "reasoning": "why this is plausible given the triage"
  }
]`

// evaluationTemplate asks for a verdict on the current hypothesis.
// %s = hypothesis block, %s = evidence block.
const evaluationTemplate = `Evaluate the evidence gathered for this hypothesis.

%s
## Evidence
%s
Classify the overall evidence and decide the next action:
- "confirm"  — evidence strongly establishes this as the root cause
- "prune"    — evidence contradicts the hypothesis; abandon it and its sub-hypotheses
- "branch"   — evidence suggests a more specific sub-cause worth spawning as sub-hypotheses
- "continue" — evidence is inconclusive; more queries are needed

Respond with a JSON object:
{
  "evidenceStrength": "strong|weak|none|contradicting|pending",
  "confidence": 0,
  "reasoning": "how the evidence supports or undermines the hypothesis",
  "action": "confirm|prune|branch|continue",
  "findings": ["specific findings extracted from the evidence"],
  "subHypotheses": [{"statement": "...", "category": "...", "priority": 1}]
}
Include "subHypotheses" only when action is "branch". confidence is 0-100.`

// conclusionTemplate asks for the final root-cause statement.
// %s = investigation summary block.
const conclusionTemplate = `Conclude the investigation.

%s
Respond with a JSON object:
{
  "rootCause": "the root cause, or 'not determined' if the evidence is insufficient",
  "confidence": "high|medium|low",
  "confirmedHypothesisId": "h_N or null",
  "affectedServices": ["services affected"],
  "evidenceChain": [{"finding": "...", "source": "hypothesis id or tool name", "strength": "strong|weak"}],
  "alternativeExplanations": ["plausible alternatives the evidence could not exclude"],
  "unknowns": ["what could not be determined and why"]
}`

// remediationTemplate asks for an ordered remediation plan.
// %s = conclusion block, %s = runbook block, %s = code-fix block.
const remediationTemplate = `Propose a remediation plan for the concluded root cause.

%s
%s%s
Rules:
- Order steps from least to most invasive.
- Every step needs a rollback path or an explicit "no rollback possible".
- Mark riskLevel honestly; anything mutating production is at least "medium".

Respond with a JSON object:
{
  "summary": "one-sentence plan description",
  "steps": [
    {
      "action": "imperative action title",
      "description": "what this does and why",
      "command": "exact command, if one exists",
      "rollbackCommand": "how to undo, if possible",
      "codeReference": "file or PR reference, if a code fix",
      "riskLevel": "low|medium|high|critical",
      "requiresApproval": true
    }
  ]
}`

// iterationTemplate drives one turn of the free-form agent loop.
// %s = query, %s = tiered context, %s = tool-usage status, %s = extra
// sections (knowledge, hypothesis context).
const iterationTemplate = `## Question
%s

%s
%s%s
Decide your next step. Either call tools to gather the data you still need, or, if you
have enough evidence, answer the question directly without calling any tools.
Reference prior results by their resultId; call get_full_result to re-read a summarized
or cleared result.`

// knowledgeOnlyTemplate answers a procedural question from runbooks alone.
// %s = query, %s = knowledge block.
const knowledgeOnlyTemplate = `Answer the following question using ONLY the documentation below.
Do not call any tools. If the documentation does not cover the question, say so explicitly.

## Question
%s

## Documentation
%s
End your answer with a "Sources:" line listing the document titles you used.`

// forcedConclusionTemplate ends a loop that hit its iteration limit.
// %d = iteration count.
const forcedConclusionTemplate = `You have reached the investigation iteration limit (%d iterations).

Conclude now using only what you have already gathered:
- Perfect information is not required; provide actionable findings from the available data.
- Clearly separate conclusions backed by tool-gathered evidence from ones based only on the
  original report.
- If most tool calls failed or returned nothing useful, state that the analysis is limited.
- Name what you could not determine and why.`

// strictRetryReminder is appended when a structured response failed to parse.
const strictRetryReminder = `

REMINDER: your previous response could not be parsed. Respond with EXACTLY ONE valid JSON
document matching the requested schema — no markdown fences, no commentary, no trailing text.`
