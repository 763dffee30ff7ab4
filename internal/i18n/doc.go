// Package i18n holds the translated user-facing strings. Message keys are the
// English texts; Vietnamese translations are registered in the x/text catalog
// at init time and Vietnamese is the default language.
package i18n
