package chatbot

// Topic keys for the canned response tables.
const (
	topicGreeting        = "greeting"
	topicAbout           = "about"
	topicApply           = "apply"
	topicEligibility     = "eligibility"
	topicSkillTest       = "skilltest"
	topicRecommendations = "recommendations"
	topicFeatures        = "features"
	topicSupport         = "support"
	topicDefault         = "default"
)

// fallbackResponses holds the canned replies per language, used when the
// LLM is unavailable or fails.
var fallbackResponses = map[string]map[string]string{
	"en": {
		topicGreeting:        "Hello! I'm your PM Internship Assistant. I can help you with questions about our portal and services.",
		topicAbout:           "The PM Internship Portal is an AI-powered platform that helps Indian youth find internship opportunities through the PM Internship Scheme.",
		topicApply:           "To apply: 1) Register on our portal, 2) Complete your profile, 3) Take our skill test, 4) Get recommendations, 5) Apply directly.",
		topicEligibility:     "PM Internship eligibility: Ages 21-24, completed/pursuing diploma/degree, Indian citizen.",
		topicSkillTest:       "Our skill test is a 5-question assessment with anti-cheating measures. It adapts to your selected skills.",
		topicRecommendations: "We use AI to match your profile with suitable internships based on skills, education, and preferences.",
		topicFeatures:        "Key features: AI recommendations, skill tests, profile matching, career guidance, multilingual support.",
		topicSupport:         "For support, check our help section, FAQ, or contact form. We're here to help!",
		topicDefault:         "I'm here to help with PM Internship Portal questions. Ask about registration, eligibility, tests, or recommendations.",
	},
	"hi": {
		topicGreeting:        "नमस्ते! मैं आपका पीएम इंटर्नशिप सहायक हूं। मैं आपको हमारे पोर्टल और सेवाओं के बारे में मदद कर सकता हूं।",
		topicAbout:           "पीएम इंटर्नशिप पोर्टल एक एआई-संचालित प्लेटफॉर्म है जो भारतीय युवाओं को इंटर्नशिप के अवसर खोजने में मदद करता है।",
		topicApply:           "आवेदन करने के लिए: 1) रजिस्टर करें, 2) प्रोफ़ाइल पूरी करें, 3) कौशल परीक्षा लें, 4) सिफारिशें प्राप्त करें, 5) आवेदन करें।",
		topicEligibility:     "पीएम इंटर्नशिप पात्रता: आयु 21-24 वर्ष, डिप्लोमा/डिग्री पूर्ण/जारी, भारतीय नागरिक।",
		topicSkillTest:       "हमारी कौशल परीक्षा धोखाधड़ी रोधी उपायों के साथ 5-प्रश्न मूल्यांकन है। यह आपके चयनित कौशलों के अनुकूल है।",
		topicRecommendations: "हम आपकी प्रोफ़ाइल को कौशल, शिक्षा और प्राथमिकताओं के आधार पर उपयुक्त इंटर्नशिप से मिलाने के लिए एआई का उपयोग करते हैं।",
		topicFeatures:        "मुख्य विशेषताएं: एआई सिफारिशें, कौशल परीक्षा, प्रोफ़ाइल मैचिंग, करियर मार्गदर्शन, बहुभाषी समर्थन।",
		topicSupport:         "सहायता के लिए, हमारे सहायता अनुभाग, FAQ या संपर्क फॉर्म देखें। हम मदद के लिए यहां हैं!",
		topicDefault:         "मैं पीएम इंटर्नशिप पोर्टल के प्रश्नों में मदद के लिए यहां हूं। रजिस्ट्रेशन, पात्रता, परीक्षा या सिफारिशों के बारे में पूछें।",
	},
}

// topicKeywords routes a message to a topic. Rules run in order; the first
// rule with a keyword hit wins. Hindi keywords sit alongside English so
// routing works in either language regardless of the language parameter.
var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{topicAbout, []string{"portal", "about", "what is", "क्या है"}},
	{topicApply, []string{"apply", "registration", "आवेदन"}},
	{topicEligibility, []string{"eligibility", "पात्रता"}},
	{topicSkillTest, []string{"test", "परीक्षा"}},
	{topicRecommendations, []string{"recommendation", "सिफारिश"}},
	{topicFeatures, []string{"feature", "विशेषता"}},
	{topicSupport, []string{"help", "support", "सहायता"}},
	{topicGreeting, []string{"hello", "hi", "नमस्ते"}},
}
