package extraction

// jobPrompt instructs the LLM to structure a job description.
const jobPrompt = `You are an expert HR analyst. Given a Job Description (JD) as plain text, return a STRICT JSON with:
{
  "title": string,
  "seniority": one of ["intern","junior","mid","senior","lead","manager","director","executive"],
  "required_skills": string[] (max 25, lowercase tokens),
  "nice_to_have_skills": string[] (max 20, lowercase tokens),
  "responsibilities": string[] (concise bullet points),
  "raw_summary": string
}
Only output JSON. No markdown. No commentary.

Job description:
`

// resumePrompt instructs the LLM to structure a resume.
const resumePrompt = `You are an expert resume parser. Given resume text, return STRICT JSON:
{
  "name": string | null,
  "titles": string[] (role titles found),
  "seniority": one of ["intern","junior","mid","senior","lead","manager","director","executive"],
  "skills": string[] (max 50, lowercase tokens),
  "experience_bullets": string[] (concise bullets describing actual work done),
  "education": string[]
}
Only output JSON. No markdown. No commentary.

Resume:
`

// authenticityPrompt instructs the LLM to estimate AI-generated likelihood.
const authenticityPrompt = `You are an AI-content auditor. Estimate the likelihood that the text was generated or heavily edited by an LLM.
Return a STRICT JSON like:
{
  "ai_likelihood_percent": number (0-100 integer),
  "rationale": string (short),
  "flags": string[] (patterns such as generic phrasing, templated bullets, low-specificity)
}
Only output JSON. No markdown. No commentary.

Text:
`
