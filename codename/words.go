package codename

// Fixed vocabulary for codenames. Adjectives are deliberately mild so a
// codename never reads as a judgement of the person behind it.
var adjectives = []string{
	"amber", "ancient", "bold", "brave", "breezy", "bright", "calm",
	"cheerful", "clever", "cloudy", "cosmic", "crimson", "curious",
	"dapper", "dusty", "eager", "early", "fearless", "frosty", "gentle",
	"gilded", "golden", "graceful", "hidden", "humble", "ivory", "jolly",
	"keen", "lively", "lucky", "mellow", "mighty", "misty", "noble",
	"patient", "peaceful", "polished", "proud", "quiet", "rustic",
	"scarlet", "silent", "silver", "snowy", "steady", "sunny", "swift",
	"tranquil", "velvet", "wandering", "warm", "wise",
}

var nouns = []string{
	"albatross", "antelope", "badger", "beaver", "bittern", "bonefish",
	"caribou", "chamois", "cormorant", "coyote", "crane", "curlew",
	"dormouse", "falcon", "firefly", "gazelle", "gecko", "heron",
	"ibex", "jackdaw", "kestrel", "kingfisher", "lemming", "lynx",
	"magpie", "marmot", "marten", "meerkat", "moorhen", "narwhal",
	"nightjar", "ocelot", "oriole", "osprey", "otter", "pangolin",
	"petrel", "pika", "plover", "puffin", "quail", "raccoon",
	"sandpiper", "starling", "stoat", "swallow", "tanager", "tapir",
	"vole", "wagtail", "wombat", "wren",
}
