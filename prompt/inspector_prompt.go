package prompt

import (
	"fmt"

	"github.com/structcodes/assistant/domain"
)

const inspectorPromptEnglish = `
      Create a detailed Site Inspection Checklist (ITP) for:

      **ELEMENT:** %s
      **BUILDING:** %s
      **LOCATION:** %s
      **CODE:** %s

      **OUTPUT FORMAT:**
      1.  **Checklist Table** (Must use Markdown Table format strictly):
          | No. | Check Point (Phase) | Acceptance Criteria (Values/Tolerances) | Reference | Risk Level |
          | :--- | :--- | :--- | :--- | :--- |

      2.  **Detailed Risk Analysis**:
          *   Select the top 3 "HIGH" priority risks from the checklist.
          *   For each risk, provide a **detailed engineering explanation**:
              *   **Failure Mechanism**: How exactly does the failure occur physically/chemically? (e.g., "Chloride ions penetrate the porous concrete cover, lowering pH, depassivating the steel, and causing expansive rust formation").
              *   **Consequences**: What is the structural impact? (e.g., "Reduction in bond strength, spalling, and eventual loss of load-bearing capacity").
              *   **Mitigation**: Specific site action to prevent this.
          *   **Requirement:** Use LaTeX formatting for any equations (e.g., $$M_u$$).

      3.  **Executive Summary**:
          *   At the very end, provide a concise 3-bullet summary.
    `

const inspectorPromptArabic = `
      قم بإنشاء قائمة تحقق لفحص الموقع (ITP) مفصلة واحترافية للعنصر التالي:

      **العنصر:** %s
      **نوع المبنى:** %s
      **الموقع:** %s
      **الكود:** %s

      **تنسيق المخرجات (يجب أن يكون Markdown Table حصراً للجدول):**
      1.  **جدول القائمة**:
          | رقم | نقطة الفحص (المرحلة) | معايير القبول (القيم/التفاوتات) | المرجع | مستوى الخطر |
          | :--- | :--- | :--- | :--- | :--- |

      2.  **تحليل المخاطر التفصيلي (Detailed Risk Analysis)**:
          *   اختر أهم 3 مخاطر ذات تصنيف "عالي" من القائمة.
          *   لكل خطر، قدم **شرحاً هندسياً مفصلاً**:
              *   **آلية الانهيار (Failure Mechanism)**: كيف يحدث الخلل فيزيائياً/كيميائياً؟ (مثال: "تخترق أيونات الكلوريد الغطاء الخرساني المسامي، مما يقلل القلوية (pH) ويزيل طبقة الحماية عن الحديد، مسبباً صدأ تمددي").
              *   **العواقب (Consequences)**: ما هو التأثير الإنشائي؟ (مثال: "ضعف الترابط بين الحديد والخرسانة، تشظي الغطاء (Spalling)، وفقدان القدرة على التحمل").
              *   **التخفيف (Mitigation)**: إجراءات محددة في الموقع للمنع.
          *   **شرط:** استخدم تنسيق LaTeX لأي معادلات رياضية.

      3.  **ملخص تنفيذي (Executive Summary)**:
          *   في النهاية، قدم ملخصًا موجزًا من 3 نقاط لأهم ما يجب على المفتش التركيز عليه.
    `

// InspectorPrompt builds the single user turn for a checklist generation
// request. One template per language; the element, building type, location and
// code context are substituted into fixed slots.
func InspectorPrompt(req domain.ChecklistRequest, context domain.CodeContext) string {
	tmpl := inspectorPromptEnglish
	if req.Language == domain.LanguageArabic {
		tmpl = inspectorPromptArabic
	}
	return fmt.Sprintf(tmpl, req.ElementLabel, req.BuildingType, req.Location, context)
}
