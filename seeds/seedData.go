package seeds

import (
	searchmodels "search-battle-backend/search/models"
)

// reviewCorpus is the demo dataset loaded into both stores. Sentiment is
// 1 for positive, 0 for negative.
var reviewCorpus = []searchmodels.Record{
	{ExternalID: 1, Review: "This product exceeded all my expectations, absolutely love it", Sentiment: 1},
	{ExternalID: 2, Review: "Terrible build quality, broke after two days of normal use", Sentiment: 0},
	{ExternalID: 3, Review: "Shipping was fast and the packaging was great", Sentiment: 1},
	{ExternalID: 4, Review: "The battery life is a disaster, barely lasts an hour", Sentiment: 0},
	{ExternalID: 5, Review: "Great value for the price, would definitely buy again", Sentiment: 1},
	{ExternalID: 6, Review: "Customer support never answered my emails, very disappointing", Sentiment: 0},
	{ExternalID: 7, Review: "Works exactly as described, no complaints whatsoever", Sentiment: 1},
	{ExternalID: 8, Review: "The screen arrived cracked and the replacement took a month", Sentiment: 0},
	{ExternalID: 9, Review: "Surprisingly quiet and energy efficient, great for small apartments", Sentiment: 1},
	{ExternalID: 10, Review: "The manual is useless and the setup process is confusing", Sentiment: 0},
	{ExternalID: 11, Review: "Battery easily lasts the whole day, charging is quick too", Sentiment: 1},
	{ExternalID: 12, Review: "Stopped working after the first firmware update, avoid this", Sentiment: 0},
	{ExternalID: 13, Review: "The fabric feels premium and the fit is perfect", Sentiment: 1},
	{ExternalID: 14, Review: "Colors faded after a single wash, really cheap material", Sentiment: 0},
	{ExternalID: 15, Review: "Best purchase I made this year, highly recommended", Sentiment: 1},
}
