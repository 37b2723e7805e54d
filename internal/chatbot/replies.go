// README: Bilingual reply catalog; failure kinds map deterministically to localized messages.
package chatbot

import (
	"fmt"

	"cruise/internal/types"
)

type replyKey string

const (
	replyEscalated        replyKey = "escalated"
	replyEscalationFailed replyKey = "escalation_failed"
	replyProcessingError  replyKey = "processing_error"

	replyBookingConfirmed         replyKey = "booking_confirmed"
	replyBookingConfirmedNoDriver replyKey = "booking_confirmed_no_driver"
	replyBookingFailed            replyKey = "booking_failed"
	replyNeedDropoff              replyKey = "need_dropoff"
	replyNeedPickup               replyKey = "need_pickup"
	replyNeedLocations            replyKey = "need_locations"

	replyCancelled       replyKey = "cancelled"
	replyCancelFailed    replyKey = "cancel_failed"
	replyActiveRideFound replyKey = "active_ride_found"
	replyNoActiveRides   replyKey = "no_active_rides"
	replyNoRideHistory   replyKey = "no_ride_history"
	replyAskBookingID    replyKey = "ask_booking_id"

	replyRecommendation        replyKey = "recommendation"
	replyNoRecommendations     replyKey = "no_recommendations"
	replyRecommendationsFailed replyKey = "recommendations_failed"

	replySafetyDone   replyKey = "safety_done"
	replySafetyFailed replyKey = "safety_failed"

	replyCarpoolCount  replyKey = "carpool_count"
	replyCarpoolMatch  replyKey = "carpool_match"
	replyNoCarpool     replyKey = "no_carpool"
	replyCarpoolFailed replyKey = "carpool_failed"

	defaultDestination replyKey = "default_destination"
	defaultETA         replyKey = "default_eta"
)

// catalog holds every user-facing template in both languages. Placeholder
// order is identical across languages so one argument list formats both.
var catalog = map[replyKey]Bilingual{
	replyEscalated: {
		EN: "I understand you're feeling frustrated. I'm escalating this to our support team who will assist you shortly. In the meantime, is there anything specific I can help you with?",
		AR: "أفهم أنك قد تشعر بالإحباط. سأقوم بتصعيد هذا الأمر إلى فريق الدعم لدينا الذي سيساعدك قريبًا. في غضون ذلك، هل هناك شيء محدد يمكنني مساعدتك به؟",
	},
	replyEscalationFailed: {
		EN: "I notice you seem upset. I'd like to connect you with our support team, but I'm having technical difficulties. Please try again or call our support line at 1-800-CRUISE-HELP for immediate assistance.",
		AR: "ألاحظ أنك تبدو منزعجًا. أود أن أوصلك بفريق الدعم لدينا، لكنني أواجه صعوبات تقنية. يرجى المحاولة مرة أخرى أو الاتصال بخط الدعم على 1-800-CRUISE-HELP للحصول على مساعدة فورية.",
	},
	replyProcessingError: {
		EN: "I'm sorry, I encountered an error while processing your request. Please try again or contact our support team for assistance.",
		AR: "آسف، واجهت خطأ أثناء معالجة طلبك. يرجى المحاولة مرة أخرى أو الاتصال بفريق الدعم للحصول على المساعدة.",
	},
	replyBookingConfirmed: {
		EN: "Great! I've booked your ride from %s to %s. Your booking ID is %s. Your driver %s will arrive in a %s (plate: %s) in approximately %s minutes.",
		AR: "رائع! لقد حجزت رحلتك من %s إلى %s. رقم حجزك هو %s. سيصل سائقك %s بسيارة %s (لوحة: %s) في غضون %s دقيقة تقريبًا.",
	},
	replyBookingConfirmedNoDriver: {
		EN: "Great! I've booked your ride from %s to %s. Your booking ID is %s. Your driver will be assigned shortly.",
		AR: "رائع! لقد حجزت رحلتك من %s إلى %s. رقم حجزك هو %s. سيتم تعيين سائقك قريبًا.",
	},
	replyBookingFailed: {
		EN: "I couldn't complete your booking due to a technical issue. Please try again or contact support if the problem persists.",
		AR: "لم أتمكن من إكمال حجزك بسبب مشكلة فنية. يرجى المحاولة مرة أخرى أو الاتصال بالدعم إذا استمرت المشكلة.",
	},
	replyNeedDropoff: {
		EN: "I see you want to be picked up at %s. Where would you like to go?",
		AR: "أرى أنك تريد أن يتم استلامك من %s. إلى أين ترغب في الذهاب؟",
	},
	replyNeedPickup: {
		EN: "I see you want to go to %s. Where would you like to be picked up from?",
		AR: "أرى أنك تريد الذهاب إلى %s. من أين ترغب في أن يتم استلامك؟",
	},
	replyNeedLocations: {
		EN: "I can help you book a ride. Please let me know your pickup and dropoff locations.",
		AR: "يمكنني مساعدتك في حجز رحلة. يرجى إخباري بمواقع الاستلام والإنزال الخاصة بك.",
	},
	replyCancelled: {
		EN: "I've cancelled your ride (Booking ID: %s). %.2f has been refunded to your account. Is there anything else I can help you with?",
		AR: "لقد ألغيت رحلتك (معرف الحجز: %s). تم رد %.2f إلى حسابك. هل هناك أي شيء آخر يمكنني مساعدتك به؟",
	},
	replyCancelFailed: {
		EN: "I couldn't cancel your ride due to a technical issue. Please try again or contact support if the problem persists.",
		AR: "لم أتمكن من إلغاء رحلتك بسبب مشكلة فنية. يرجى المحاولة مرة أخرى أو الاتصال بالدعم إذا استمرت المشكلة.",
	},
	replyActiveRideFound: {
		EN: "I found your active ride to %s. To cancel it, please reply with 'Yes, cancel' or provide the booking ID.",
		AR: "لقد وجدت رحلتك النشطة إلى %s. لإلغائها، يرجى الرد بـ 'نعم، ألغِ' أو قدم معرف الحجز.",
	},
	replyNoActiveRides: {
		EN: "I don't see any active rides for you. If you have a booking ID, please provide it so I can help you cancel the correct ride.",
		AR: "لا أرى أي رحلات نشطة لك. إذا كان لديك معرف حجز، يرجى تقديمه حتى أتمكن من مساعدتك في إلغاء الرحلة الصحيحة.",
	},
	replyNoRideHistory: {
		EN: "I couldn't find any ride history. Please provide your booking ID so I can help you cancel the correct ride.",
		AR: "لم أتمكن من العثور على أي سجل للرحلات. يرجى تقديم معرف الحجز الخاص بك حتى أتمكن من مساعدتك في إلغاء الرحلة الصحيحة.",
	},
	replyAskBookingID: {
		EN: "I can help you cancel your ride. Please provide your booking ID.",
		AR: "يمكنني مساعدتك في إلغاء رحلتك. يرجى تقديم معرف الحجز الخاص بك.",
	},
	replyRecommendation: {
		EN: "Based on your history, I recommend: %s",
		AR: "بناءً على سجلك، أوصي بما يلي: %s",
	},
	replyNoRecommendations: {
		EN: "I don't have any specific recommendations at the moment. Would you like to book a ride to one of your favorite destinations?",
		AR: "ليس لدي أي توصيات محددة في الوقت الحالي. هل ترغب في حجز رحلة إلى إحدى وجهاتك المفضلة؟",
	},
	replyRecommendationsFailed: {
		EN: "I'm having trouble accessing your recommendations right now. Would you like me to help you book a ride instead?",
		AR: "أواجه مشكلة في الوصول إلى توصياتك في الوقت الحالي. هل ترغب في مساعدتك في حجز رحلة بدلاً من ذلك؟",
	},
	replySafetyDone: {
		EN: "Safety check completed. Recommendations: %s",
		AR: "اكتمل فحص السلامة. التوصيات: %s",
	},
	replySafetyFailed: {
		EN: "I couldn't complete the safety check at this time. Please try again later or contact support if you have safety concerns.",
		AR: "لم أتمكن من إكمال فحص السلامة في هذا الوقت. يرجى المحاولة مرة أخرى لاحقًا أو الاتصال بالدعم إذا كانت لديك مخاوف تتعلق بالسلامة.",
	},
	replyCarpoolCount: {
		EN: "I found %d carpool opportunities for your route.",
		AR: "وجدت %d فرصة مشاركة سيارة لمسارك.",
	},
	replyCarpoolMatch: {
		EN: "There's a ride with %s from %s to %s at %s.",
		AR: "هناك رحلة مع %s من %s إلى %s في %s.",
	},
	replyNoCarpool: {
		EN: "I don't see any carpool opportunities at the moment. Would you like to book a regular ride instead?",
		AR: "لا أرى أي فرص لمشاركة السيارة في الوقت الحالي. هل ترغب في حجز رحلة عادية بدلاً من ذلك؟",
	},
	replyCarpoolFailed: {
		EN: "I'm having trouble checking carpool options right now. Would you like to book a regular ride instead?",
		AR: "أواجه مشكلة في التحقق من خيارات مشاركة السيارة الآن. هل ترغب في حجز رحلة عادية بدلاً من ذلك؟",
	},
	defaultDestination: {
		EN: "your destination",
		AR: "وجهتك",
	},
	defaultETA: {
		EN: "10-15",
		AR: "10-15",
	},
}

// replyText returns the catalog entry for key in lang.
func replyText(key replyKey, lang types.Language) string {
	entry := catalog[key]
	if lang == types.LanguageArabic {
		return entry.AR
	}
	return entry.EN
}

// replyf formats the catalog entry for key in lang with args.
func replyf(key replyKey, lang types.Language, args ...any) string {
	return fmt.Sprintf(replyText(key, lang), args...)
}
