package recycle

// DefaultPriceTable returns the base unit recycle prices shipped with the engine
func DefaultPriceTable() map[string]int64 {
	return map[string]int64{
		// Ores and ingots
		"minecraft:diamond":      100,
		"minecraft:emerald":      80,
		"minecraft:gold_ingot":   50,
		"minecraft:iron_ingot":   20,
		"minecraft:copper_ingot": 10,
		"minecraft:coal":         5,
		"minecraft:redstone":     8,
		"minecraft:lapis_lazuli": 12,
		// Rare materials
		"minecraft:netherite_ingot": 500,
		"minecraft:ancient_debris":  400,
		"minecraft:netherite_scrap": 100,
		"minecraft:nether_star":     1000,
		"minecraft:dragon_egg":      5000,
		"minecraft:elytra":          2000,
		// Tools and weapons
		"minecraft:diamond_sword":     200,
		"minecraft:diamond_pickaxe":   300,
		"minecraft:diamond_axe":       300,
		"minecraft:diamond_shovel":    100,
		"minecraft:diamond_hoe":       200,
		"minecraft:netherite_sword":   600,
		"minecraft:netherite_pickaxe": 700,
		"minecraft:netherite_axe":     700,
		"minecraft:netherite_shovel":  500,
		"minecraft:netherite_hoe":     600,
		// Armor
		"minecraft:diamond_helmet":       500,
		"minecraft:diamond_chestplate":   800,
		"minecraft:diamond_leggings":     700,
		"minecraft:diamond_boots":        400,
		"minecraft:netherite_helmet":     1000,
		"minecraft:netherite_chestplate": 1300,
		"minecraft:netherite_leggings":   1200,
		"minecraft:netherite_boots":      900,
		// Food
		"minecraft:golden_apple":           80,
		"minecraft:enchanted_golden_apple": 1000,
		"minecraft:cooked_beef":            3,
		"minecraft:bread":                  2,
		// Blocks
		"minecraft:diamond_block":   900,
		"minecraft:emerald_block":   720,
		"minecraft:gold_block":      450,
		"minecraft:iron_block":      180,
		"minecraft:netherite_block": 4500,
		// Misc
		"minecraft:experience_bottle": 15,
		"minecraft:enchanted_book":    50,
	}
}
